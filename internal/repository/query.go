package repository

const (
	selectPropertyKinds = `SELECT id, title, commercial FROM property_kinds ORDER BY id`

	selectProviders = `SELECT id, name, title, active, created, kind FROM providers ORDER BY id`

	selectPaySystems = `SELECT id, title FROM paysystems ORDER BY id`

	selectProperties = `SELECT
		id,
		address_txt,
		address,
		commercial,
		property_kind_id,
		data
	FROM properties ORDER BY id`

	selectPermissions = `SELECT
		id,
		property_id,
		user_id,
		user_role,
		expire
	FROM property_permissions ORDER BY id`

	selectServiceAccounts = `SELECT
		id,
		property_id,
		provider_id,
		account_number,
		description,
		billing_day,
		flat_rate,
		account_type
	FROM service_accounts ORDER BY id`

	selectBills = `SELECT
		id,
		service_account_id,
		issue_date,
		due_date,
		amount,
		details,
		payment_id,
		payed_date,
		status
	FROM bills ORDER BY id`

	selectPayments = `SELECT
		id,
		bill_id,
		paysystem_id,
		create_date,
		paid_at,
		amount_total,
		amount_provider,
		amount_fee,
		status,
		success
	FROM payments ORDER BY id`
)

const (
	tableProperties      = "properties"
	tablePermissions     = "property_permissions"
	tableServiceAccounts = "service_accounts"
	tableBills           = "bills"
	tablePayments        = "payments"
)
