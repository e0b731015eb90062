package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype/zeronull"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/samandr77/microservices/billing/internal/entity"
	"github.com/samandr77/microservices/billing/internal/store"
)

type Repository struct {
	db *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{
		db: pool,
	}
}

type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Load reads the whole billing state in one consistent read.
func (r *Repository) Load(ctx context.Context) (store.Snapshot, error) {
	var snap store.Snapshot

	err := pgx.BeginTxFunc(ctx, r.db, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	}, func(tx pgx.Tx) error {
		ref, err := referenceData(ctx, tx)
		if err != nil {
			return err
		}

		snap.PropertyKinds = ref.PropertyKinds
		snap.Providers = ref.Providers
		snap.PaySystems = ref.PaySystems

		snap.Properties, err = queryAll(ctx, tx, selectProperties, scanProperty)
		if err != nil {
			return fmt.Errorf("select properties: %w", err)
		}

		snap.Permissions, err = queryAll(ctx, tx, selectPermissions, scanPermission)
		if err != nil {
			return fmt.Errorf("select permissions: %w", err)
		}

		snap.ServiceAccounts, err = queryAll(ctx, tx, selectServiceAccounts, scanServiceAccount)
		if err != nil {
			return fmt.Errorf("select service accounts: %w", err)
		}

		snap.Bills, err = queryAll(ctx, tx, selectBills, scanBill)
		if err != nil {
			return fmt.Errorf("select bills: %w", err)
		}

		snap.Payments, err = queryAll(ctx, tx, selectPayments, scanPayment)
		if err != nil {
			return fmt.Errorf("select payments: %w", err)
		}

		return nil
	})
	if err != nil {
		return store.Snapshot{}, err
	}

	return snap, nil
}

func (r *Repository) ReferenceData(ctx context.Context) (store.ReferenceData, error) {
	return referenceData(ctx, r.db)
}

func referenceData(ctx context.Context, q querier) (ref store.ReferenceData, err error) {
	ref.PropertyKinds, err = queryAll(ctx, q, selectPropertyKinds, scanPropertyKind)
	if err != nil {
		return store.ReferenceData{}, fmt.Errorf("select property kinds: %w", err)
	}

	ref.Providers, err = queryAll(ctx, q, selectProviders, scanProvider)
	if err != nil {
		return store.ReferenceData{}, fmt.Errorf("select providers: %w", err)
	}

	ref.PaySystems, err = queryAll(ctx, q, selectPaySystems, scanPaySystem)
	if err != nil {
		return store.ReferenceData{}, fmt.Errorf("select paysystems: %w", err)
	}

	return ref, nil
}

// Apply writes one committed change set in a single database transaction.
func (r *Repository) Apply(ctx context.Context, changes []entity.Change) error {
	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		for _, c := range changes {
			stmt, err := changeStatement(c)
			if err != nil {
				return err
			}

			sql, args, err := stmt.ToSql()
			if err != nil {
				return fmt.Errorf("build %s %s %d: %w", c.Action, c.Entity, c.ID, err)
			}

			_, err = tx.Exec(ctx, sql, args...)
			if err != nil {
				return fmt.Errorf("%s %s %d: %w", c.Action, c.Entity, c.ID, err)
			}
		}

		return nil
	})
}

func changeStatement(c entity.Change) (sq.Sqlizer, error) {
	if c.Action == entity.ActionDelete {
		table, ok := tables[c.Entity]
		if !ok {
			return nil, fmt.Errorf("%w: cannot delete %s", entity.ErrInvalidArgument, c.Entity)
		}

		return sq.Delete(table).Where(sq.Eq{"id": c.ID}).PlaceholderFormat(sq.Dollar), nil
	}

	switch v := c.After.(type) {
	case entity.Property:
		return upsertProperty(v)
	case entity.PropertyPermission:
		return upsertPermission(v), nil
	case entity.ServiceAccount:
		return upsertServiceAccount(v), nil
	case entity.Bill:
		return upsertBill(v)
	case entity.Payment:
		return upsertPayment(v), nil
	default:
		return nil, fmt.Errorf("%w: unsupported %s of %s (%T)", entity.ErrInvalidArgument, c.Action, c.Entity, c.After)
	}
}

var tables = map[entity.EntityType]string{
	entity.EntityProperty:           tableProperties,
	entity.EntityPropertyPermission: tablePermissions,
	entity.EntityServiceAccount:     tableServiceAccounts,
	entity.EntityBill:               tableBills,
	entity.EntityPayment:            tablePayments,
}

func upsert(table string, columns []string, values ...any) sq.InsertBuilder {
	set := make([]string, 0, len(columns)-1)

	for _, col := range columns[1:] {
		set = append(set, col+" = EXCLUDED."+col)
	}

	return sq.Insert(table).
		Columns(columns...).
		Values(values...).
		Suffix("ON CONFLICT (id) DO UPDATE SET " + strings.Join(set, ", ")).
		PlaceholderFormat(sq.Dollar)
}

func upsertProperty(p entity.Property) (sq.Sqlizer, error) {
	address, err := jsonValue(p.Address != nil, p.Address)
	if err != nil {
		return nil, fmt.Errorf("marshal address of property %d: %w", p.ID, err)
	}

	data, err := jsonValue(p.Data != nil, p.Data)
	if err != nil {
		return nil, fmt.Errorf("marshal data of property %d: %w", p.ID, err)
	}

	return upsert(tableProperties,
		[]string{"id", "address_txt", "address", "commercial", "property_kind_id", "data"},
		p.ID, zeronull.Text(p.AddressText), address, p.Commercial, p.PropertyKindID, data,
	), nil
}

func upsertPermission(p entity.PropertyPermission) sq.Sqlizer {
	return upsert(tablePermissions,
		[]string{"id", "property_id", "user_id", "user_role", "expire"},
		p.ID, p.PropertyID, p.UserID, string(p.Role), p.Expire,
	)
}

func upsertServiceAccount(sa entity.ServiceAccount) sq.Sqlizer {
	return upsert(tableServiceAccounts,
		[]string{"id", "property_id", "provider_id", "account_number", "description", "billing_day", "flat_rate", "account_type"},
		sa.ID, sa.PropertyID, sa.ProviderID, zeronull.Text(sa.AccountNumber), zeronull.Text(sa.Description),
		sa.BillingDay, sa.FlatRate, sa.AccountType,
	)
}

func upsertBill(b entity.Bill) (sq.Sqlizer, error) {
	details, err := jsonValue(b.Details != nil, b.Details)
	if err != nil {
		return nil, fmt.Errorf("marshal details of bill %d: %w", b.ID, err)
	}

	return upsert(tableBills,
		[]string{"id", "service_account_id", "issue_date", "due_date", "amount", "details", "payment_id", "payed_date", "status"},
		b.ID, b.ServiceAccountID, b.IssueDate, b.DueDate, b.Amount, details, b.PaymentID, b.PayedDate, string(b.Status()),
	), nil
}

func upsertPayment(p entity.Payment) sq.Sqlizer {
	return upsert(tablePayments,
		[]string{"id", "bill_id", "paysystem_id", "create_date", "paid_at", "amount_total", "amount_provider", "amount_fee", "status", "success"},
		p.ID, p.BillID, p.PaySystemID, p.CreatedAt, p.PaidAt, p.AmountTotal, p.AmountProvider, p.AmountFee, string(p.Status), p.Success,
	)
}

// jsonValue encodes v for a JSONB column, or NULL when present is false.
func jsonValue(present bool, v any) (any, error) {
	if !present {
		return nil, nil
	}

	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	return string(b), nil
}

func queryAll[T any](ctx context.Context, q querier, sql string, scan func(pgx.Row) (T, error)) ([]T, error) {
	rows, err := q.Query(ctx, sql)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var out []T

	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, err
		}

		out = append(out, v)
	}

	return out, rows.Err()
}

func scanPropertyKind(row pgx.Row) (k entity.PropertyKind, err error) {
	err = row.Scan(&k.ID, &k.Title, &k.Commercial)
	return k, err
}

func scanProvider(row pgx.Row) (p entity.Provider, err error) {
	err = row.Scan(&p.ID, (*zeronull.Text)(&p.Name), &p.Title, &p.Active, &p.Created, &p.Kind)
	return p, err
}

func scanPaySystem(row pgx.Row) (p entity.PaySystem, err error) {
	err = row.Scan(&p.ID, &p.Title)
	return p, err
}

func scanProperty(row pgx.Row) (p entity.Property, err error) {
	var address, data []byte

	err = row.Scan(
		&p.ID,
		(*zeronull.Text)(&p.AddressText),
		&address,
		&p.Commercial,
		&p.PropertyKindID,
		&data,
	)
	if err != nil {
		return entity.Property{}, err
	}

	if len(address) > 0 {
		p.Address = &entity.Address{}

		err = json.Unmarshal(address, p.Address)
		if err != nil {
			return entity.Property{}, fmt.Errorf("unmarshal address of property %d: %w", p.ID, err)
		}
	}

	if len(data) > 0 {
		err = json.Unmarshal(data, &p.Data)
		if err != nil {
			return entity.Property{}, fmt.Errorf("unmarshal data of property %d: %w", p.ID, err)
		}
	}

	return p, nil
}

func scanPermission(row pgx.Row) (p entity.PropertyPermission, err error) {
	err = row.Scan(&p.ID, &p.PropertyID, &p.UserID, &p.Role, &p.Expire)
	return p, err
}

func scanServiceAccount(row pgx.Row) (sa entity.ServiceAccount, err error) {
	err = row.Scan(
		&sa.ID,
		&sa.PropertyID,
		&sa.ProviderID,
		(*zeronull.Text)(&sa.AccountNumber),
		(*zeronull.Text)(&sa.Description),
		&sa.BillingDay,
		&sa.FlatRate,
		&sa.AccountType,
	)

	return sa, err
}

func scanBill(row pgx.Row) (b entity.Bill, err error) {
	var (
		details []byte
		status  entity.BillStatus
	)

	err = row.Scan(
		&b.ID,
		&b.ServiceAccountID,
		&b.IssueDate,
		&b.DueDate,
		&b.Amount,
		&details,
		&b.PaymentID,
		&b.PayedDate,
		&status,
	)
	if err != nil {
		return entity.Bill{}, err
	}

	if len(details) > 0 {
		err = json.Unmarshal(details, &b.Details)
		if err != nil {
			return entity.Bill{}, fmt.Errorf("unmarshal details of bill %d: %w", b.ID, err)
		}
	}

	b.Reconcile(status)

	return b, nil
}

func scanPayment(row pgx.Row) (p entity.Payment, err error) {
	err = row.Scan(
		&p.ID,
		&p.BillID,
		&p.PaySystemID,
		&p.CreatedAt,
		&p.PaidAt,
		&p.AmountTotal,
		&p.AmountProvider,
		&p.AmountFee,
		&p.Status,
		&p.Success,
	)

	return p, err
}
