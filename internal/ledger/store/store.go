package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/schuelerstaat/statebank/internal/fault"
	"github.com/schuelerstaat/statebank/internal/ledger"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectTransactionColumns = `
	t.id, t.kind, t.created_at,
	t.sender, t.receiver, t.value, t.purpose,
	t.user_sig, t.clerk_sig, t.from_currency, t.from_value, t.to_currency, t.to_value,
	t.customer_sig, t.company_id, t.gross_price, t.net_price, t.tax, t.discount,
	t.customs, t.employment_id, t.gross_value, t.net_value, t.worktime_id, t.is_bonus
`

// scanTransaction reads one journal row and rebuilds the variant named by its
// kind tag. Expected column order matches selectTransactionColumns.
func scanTransaction(s scanner) (*ledger.Transaction, error) {
	var (
		t    ledger.Transaction
		kind string

		sender, receiver, purpose            sql.NullString
		value                                decimal.NullDecimal
		userSig, clerkSig                    sql.NullString
		fromCurrency, toCurrency             sql.NullString
		fromValue, toValue                   decimal.NullDecimal
		customerSig                          sql.NullString
		companyID, employmentID, worktimeID  uuid.NullUUID
		grossPrice, netPrice, tax, discount  decimal.NullDecimal
		customs, grossValue, netValue        decimal.NullDecimal
		isBonus                              sql.NullBool
	)

	if err := s.Scan(
		&t.ID, &kind, &t.CreatedAt,
		&sender, &receiver, &value, &purpose,
		&userSig, &clerkSig, &fromCurrency, &fromValue, &toCurrency, &toValue,
		&customerSig, &companyID, &grossPrice, &netPrice, &tax, &discount,
		&customs, &employmentID, &grossValue, &netValue, &worktimeID, &isBonus,
	); err != nil {
		return nil, err
	}

	t.Kind = ledger.Kind(kind)

	switch t.Kind {
	case ledger.KindTransfer:
		snd, err := ledger.DecodeUserSignature(sender.String)
		if err != nil {
			return nil, err
		}

		rcv, err := ledger.DecodeUserSignature(receiver.String)
		if err != nil {
			return nil, err
		}

		t.Transfer = &ledger.Transfer{Sender: snd, Receiver: rcv, Value: value.Decimal}
		if purpose.Valid {
			t.Transfer.Purpose = &purpose.String
		}
	case ledger.KindChange:
		usr, err := ledger.DecodeUserSignature(userSig.String)
		if err != nil {
			return nil, err
		}

		clk, err := ledger.DecodeUserSignature(clerkSig.String)
		if err != nil {
			return nil, err
		}

		t.Change = &ledger.Change{
			User:         usr,
			Clerk:        clk,
			FromCurrency: fromCurrency.String,
			FromValue:    fromValue.Decimal,
			ToCurrency:   toCurrency.String,
			ToValue:      toValue.Decimal,
		}
	case ledger.KindPurchase:
		cst, err := ledger.DecodeUserSignature(customerSig.String)
		if err != nil {
			return nil, err
		}

		t.Purchase = &ledger.Purchase{
			Customer:   cst,
			CompanyID:  companyID.UUID,
			GrossPrice: grossPrice.Decimal,
			NetPrice:   netPrice.Decimal,
			Tax:        tax.Decimal,
		}
		if discount.Valid {
			t.Purchase.Discount = &discount.Decimal
		}
	case ledger.KindCustoms:
		usr, err := ledger.DecodeUserSignature(userSig.String)
		if err != nil {
			return nil, err
		}

		t.Customs = &ledger.Customs{User: usr, Customs: customs.Decimal}
	case ledger.KindSalary:
		t.Salary = &ledger.Salary{
			EmploymentID: employmentID.UUID,
			GrossValue:   grossValue.Decimal,
			NetValue:     netValue.Decimal,
			Tax:          tax.Decimal,
			IsBonus:      isBonus.Bool,
		}
		if worktimeID.Valid {
			t.Salary.WorktimeID = &worktimeID.UUID
		}
	default:
		return nil, fmt.Errorf("unknown journal kind %q", kind)
	}

	return &t, nil
}

func (s *Store) Transaction(ctx context.Context, id int64) (*ledger.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + ` FROM transactions t WHERE t.id = $1`

	t, err := scanTransaction(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fault.New(fault.CodeTransactionNotFound, "transaction %d not found", id)
		}

		return nil, fmt.Errorf("getting transaction: %w", err)
	}

	if err := s.attachItems(ctx, s.db, []*ledger.Transaction{t}); err != nil {
		return nil, err
	}

	return t, nil
}

func (s *Store) TransactionsByUser(ctx context.Context, user ledger.UserSignature) ([]*ledger.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + `
		FROM transactions t
		WHERE t.sender = $1 OR t.receiver = $1 OR t.user_sig = $1 OR t.customer_sig = $1
		   OR t.company_id = $2
		   OR t.employment_id IN (SELECT id FROM employments WHERE citizen_id = $2 OR company_id = $2)
		ORDER BY t.id ASC`

	rows, err := s.db.QueryContext(ctx, query, user.Encode(), user.ID)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	var txs []*ledger.Transaction

	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}

		txs = append(txs, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transactions: %w", err)
	}

	if err := s.attachItems(ctx, s.db, txs); err != nil {
		return nil, err
	}

	return txs, nil
}

// querier is satisfied by *sql.DB and *sql.Tx.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func (s *Store) attachItems(ctx context.Context, q querier, txs []*ledger.Transaction) error {
	byID := make(map[int64]*ledger.Purchase)

	var ids []int64

	for _, t := range txs {
		if t.Kind == ledger.KindPurchase {
			byID[t.ID] = t.Purchase
			ids = append(ids, t.ID)
		}
	}

	if len(ids) == 0 {
		return nil
	}

	query := `
		SELECT transaction_id, product_id, product_revision, amount
		FROM purchase_items
		WHERE transaction_id = ANY($1)
		ORDER BY transaction_id, product_id, product_revision
	`

	rows, err := q.QueryContext(ctx, query, int64Array(ids))
	if err != nil {
		return fmt.Errorf("loading purchase items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			txID int64
			item ledger.PurchaseItem
		)
		if err := rows.Scan(&txID, &item.ProductID, &item.ProductRevision, &item.Amount); err != nil {
			return fmt.Errorf("scanning purchase item: %w", err)
		}

		byID[txID].Items = append(byID[txID].Items, item)
	}

	return rows.Err()
}

// int64Array renders ids as a postgres bigint array literal, since the
// database/sql driver path of pgx has no native slice support.
func int64Array(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("%d", id)
	}

	return "{" + strings.Join(parts, ",") + "}"
}

func (s *Store) ChangeDrafts(ctx context.Context) ([]*ledger.ChangeDraft, error) {
	query := `
		SELECT id, created_at, clerk_sig, from_currency, from_value, to_currency, to_value
		FROM change_drafts
		ORDER BY id ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing change drafts: %w", err)
	}
	defer rows.Close()

	var drafts []*ledger.ChangeDraft

	for rows.Next() {
		d, err := scanChangeDraft(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning change draft: %w", err)
		}

		drafts = append(drafts, d)
	}

	return drafts, rows.Err()
}

func scanChangeDraft(s scanner) (*ledger.ChangeDraft, error) {
	var (
		d        ledger.ChangeDraft
		clerkSig string
	)

	if err := s.Scan(&d.ID, &d.CreatedAt, &clerkSig, &d.FromCurrency, &d.FromValue, &d.ToCurrency, &d.ToValue); err != nil {
		return nil, err
	}

	clerk, err := ledger.DecodeUserSignature(clerkSig)
	if err != nil {
		return nil, err
	}

	d.Clerk = clerk

	return &d, nil
}

func (s *Store) PurchaseDrafts(ctx context.Context, companyID uuid.UUID) ([]*ledger.PurchaseDraft, error) {
	query := `
		SELECT id, created_at, company_id, gross_price, net_price, tax, discount
		FROM purchase_drafts
		WHERE company_id = $1
		ORDER BY id ASC
	`

	rows, err := s.db.QueryContext(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("listing purchase drafts: %w", err)
	}
	defer rows.Close()

	var drafts []*ledger.PurchaseDraft

	for rows.Next() {
		d, err := scanPurchaseDraft(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning purchase draft: %w", err)
		}

		drafts = append(drafts, d)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, d := range drafts {
		if err := s.loadDraftItems(ctx, s.db, d); err != nil {
			return nil, err
		}
	}

	return drafts, nil
}

func scanPurchaseDraft(s scanner) (*ledger.PurchaseDraft, error) {
	var (
		d        ledger.PurchaseDraft
		discount decimal.NullDecimal
	)

	if err := s.Scan(&d.ID, &d.CreatedAt, &d.CompanyID, &d.GrossPrice, &d.NetPrice, &d.Tax, &discount); err != nil {
		return nil, err
	}

	if discount.Valid {
		d.Discount = &discount.Decimal
	}

	return &d, nil
}

func (s *Store) loadDraftItems(ctx context.Context, q querier, d *ledger.PurchaseDraft) error {
	query := `
		SELECT product_id, product_revision, amount
		FROM purchase_draft_items
		WHERE draft_id = $1
		ORDER BY product_id, product_revision
	`

	rows, err := q.QueryContext(ctx, query, d.ID)
	if err != nil {
		return fmt.Errorf("loading draft items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item ledger.PurchaseItem
		if err := rows.Scan(&item.ProductID, &item.ProductRevision, &item.Amount); err != nil {
			return fmt.Errorf("scanning draft item: %w", err)
		}

		d.Items = append(d.Items, item)
	}

	return rows.Err()
}

func (s *Store) Begin(ctx context.Context) (ledger.Tx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning unit of work: %w", err)
	}

	return &unitOfWork{tx: dbTx, store: s}, nil
}

type unitOfWork struct {
	tx    *sql.Tx
	store *Store
}

func (u *unitOfWork) Commit() error   { return u.tx.Commit() }
func (u *unitOfWork) Rollback() error { return u.tx.Rollback() }

// Debit is the system's only way to lower a balance. The update is
// conditioned on the balance covering the value, so the non-negative
// invariant holds under any interleaving without reading first.
func (u *unitOfWork) Debit(ctx context.Context, owner ledger.UserSignature, value decimal.Decimal) error {
	query := `
		UPDATE accounts
		SET balance = balance - $1
		WHERE owner = $2 AND balance >= $1
	`

	res, err := u.tx.ExecContext(ctx, query, value, owner.Encode())
	if err != nil {
		return fmt.Errorf("debiting %s: %w", owner, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("debiting %s: %w", owner, err)
	}

	if affected == 0 {
		var exists bool
		if err := u.tx.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM accounts WHERE owner = $1)`, owner.Encode()).Scan(&exists); err != nil {
			return fmt.Errorf("checking account %s: %w", owner, err)
		}

		if !exists {
			return fault.New(fault.CodeUserNotFound, "no account for %s", owner)
		}

		return fault.New(fault.CodeBalanceTooLow, "%s cannot cover %s", owner, value)
	}

	return nil
}

func (u *unitOfWork) Credit(ctx context.Context, owner ledger.UserSignature, value decimal.Decimal) error {
	query := `
		UPDATE accounts
		SET balance = balance + $1
		WHERE owner = $2
	`

	res, err := u.tx.ExecContext(ctx, query, value, owner.Encode())
	if err != nil {
		return fmt.Errorf("crediting %s: %w", owner, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("crediting %s: %w", owner, err)
	}

	if affected == 0 {
		return fault.New(fault.CodeUserNotFound, "no account for %s", owner)
	}

	return nil
}

func (u *unitOfWork) AddRedemption(ctx context.Context, owner ledger.UserSignature, value decimal.Decimal) error {
	query := `
		UPDATE accounts
		SET redemption_balance = redemption_balance + $1
		WHERE owner = $2
	`

	res, err := u.tx.ExecContext(ctx, query, value, owner.Encode())
	if err != nil {
		return fmt.Errorf("adding redemption for %s: %w", owner, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("adding redemption for %s: %w", owner, err)
	}

	if affected == 0 {
		return fault.New(fault.CodeUserNotFound, "no account for %s", owner)
	}

	return nil
}

// InsertTransaction appends one journal row. A zero id draws the next id from
// the journal sequence; settlements pass the draft's id through unchanged.
func (u *unitOfWork) InsertTransaction(ctx context.Context, t *ledger.Transaction) error {
	query := `
		INSERT INTO transactions (
			id, kind,
			sender, receiver, value, purpose,
			user_sig, clerk_sig, from_currency, from_value, to_currency, to_value,
			customer_sig, company_id, gross_price, net_price, tax, discount,
			customs, employment_id, gross_value, net_value, worktime_id, is_bonus,
			created_at
		)
		VALUES (
			CASE WHEN $1::bigint = 0 THEN nextval('journal_id_seq') ELSE $1::bigint END, $2,
			$3, $4, $5, $6,
			$7, $8, $9, $10, $11, $12,
			$13, $14, $15, $16, $17, $18,
			$19, $20, $21, $22, $23, $24,
			NOW()
		)
		RETURNING id, created_at
	`

	var (
		sender, receiver, purpose           sql.NullString
		value                               decimal.NullDecimal
		userSig, clerkSig                   sql.NullString
		fromCurrency, toCurrency            sql.NullString
		fromValue, toValue                  decimal.NullDecimal
		customerSig                         sql.NullString
		companyID, employmentID, worktimeID uuid.NullUUID
		grossPrice, netPrice, tax, discount decimal.NullDecimal
		customs, grossValue, netValue       decimal.NullDecimal
		isBonus                             sql.NullBool
	)

	switch t.Kind {
	case ledger.KindTransfer:
		sender = sigString(&t.Transfer.Sender)
		receiver = sigString(&t.Transfer.Receiver)
		value = nullDecimal(&t.Transfer.Value)

		if t.Transfer.Purpose != nil {
			purpose = sql.NullString{String: *t.Transfer.Purpose, Valid: true}
		}
	case ledger.KindChange:
		userSig = sigString(&t.Change.User)
		clerkSig = sigString(&t.Change.Clerk)
		fromCurrency = sql.NullString{String: t.Change.FromCurrency, Valid: true}
		fromValue = nullDecimal(&t.Change.FromValue)
		toCurrency = sql.NullString{String: t.Change.ToCurrency, Valid: true}
		toValue = nullDecimal(&t.Change.ToValue)
	case ledger.KindPurchase:
		customerSig = sigString(&t.Purchase.Customer)
		companyID = uuid.NullUUID{UUID: t.Purchase.CompanyID, Valid: true}
		grossPrice = nullDecimal(&t.Purchase.GrossPrice)
		netPrice = nullDecimal(&t.Purchase.NetPrice)
		tax = nullDecimal(&t.Purchase.Tax)
		discount = nullDecimal(t.Purchase.Discount)
	case ledger.KindCustoms:
		userSig = sigString(&t.Customs.User)
		customs = nullDecimal(&t.Customs.Customs)
	case ledger.KindSalary:
		employmentID = uuid.NullUUID{UUID: t.Salary.EmploymentID, Valid: true}
		grossValue = nullDecimal(&t.Salary.GrossValue)
		netValue = nullDecimal(&t.Salary.NetValue)
		tax = nullDecimal(&t.Salary.Tax)
		isBonus = sql.NullBool{Bool: t.Salary.IsBonus, Valid: true}

		if t.Salary.WorktimeID != nil {
			worktimeID = uuid.NullUUID{UUID: *t.Salary.WorktimeID, Valid: true}
		}
	default:
		return fmt.Errorf("unknown journal kind %q", t.Kind)
	}

	err := u.tx.QueryRowContext(ctx, query,
		t.ID, string(t.Kind),
		sender, receiver, value, purpose,
		userSig, clerkSig, fromCurrency, fromValue, toCurrency, toValue,
		customerSig, companyID, grossPrice, netPrice, tax, discount,
		customs, employmentID, grossValue, netValue, worktimeID, isBonus,
	).Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting journal row: %w", err)
	}

	if t.Kind == ledger.KindPurchase {
		for _, item := range t.Purchase.Items {
			_, err := u.tx.ExecContext(ctx, `
				INSERT INTO purchase_items (transaction_id, product_id, product_revision, amount)
				VALUES ($1, $2, $3, $4)
			`, t.ID, item.ProductID, item.ProductRevision, item.Amount)
			if err != nil {
				return fmt.Errorf("inserting purchase item: %w", err)
			}
		}
	}

	return nil
}

func sigString(s *ledger.UserSignature) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}

	return sql.NullString{String: s.Encode(), Valid: true}
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}

	return decimal.NullDecimal{Decimal: *d, Valid: true}
}

func (u *unitOfWork) TransactionExists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	if err := u.tx.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM transactions WHERE id = $1)`, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("checking journal id %d: %w", id, err)
	}

	return exists, nil
}

func (u *unitOfWork) InsertChangeDraft(ctx context.Context, d *ledger.ChangeDraft) error {
	query := `
		INSERT INTO change_drafts (id, clerk_sig, from_currency, from_value, to_currency, to_value, created_at)
		VALUES (nextval('journal_id_seq'), $1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`

	err := u.tx.QueryRowContext(ctx, query,
		d.Clerk.Encode(), d.FromCurrency, d.FromValue, d.ToCurrency, d.ToValue,
	).Scan(&d.ID, &d.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting change draft: %w", err)
	}

	return nil
}

func (u *unitOfWork) ChangeDraftForUpdate(ctx context.Context, id int64) (*ledger.ChangeDraft, error) {
	query := `
		SELECT id, created_at, clerk_sig, from_currency, from_value, to_currency, to_value
		FROM change_drafts
		WHERE id = $1
		FOR UPDATE
	`

	d, err := scanChangeDraft(u.tx.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fault.New(fault.CodeChangeTransactionNotFound, "change draft %d not found", id)
		}

		return nil, fmt.Errorf("locking change draft: %w", err)
	}

	return d, nil
}

func (u *unitOfWork) DeleteChangeDraft(ctx context.Context, id int64) error {
	res, err := u.tx.ExecContext(ctx, `DELETE FROM change_drafts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting change draft: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting change draft: %w", err)
	}

	if affected == 0 {
		return fault.New(fault.CodeChangeTransactionNotFound, "change draft %d not found", id)
	}

	return nil
}

func (u *unitOfWork) InsertPurchaseDraft(ctx context.Context, d *ledger.PurchaseDraft) error {
	query := `
		INSERT INTO purchase_drafts (id, company_id, gross_price, net_price, tax, discount, created_at)
		VALUES (nextval('journal_id_seq'), $1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`

	err := u.tx.QueryRowContext(ctx, query,
		d.CompanyID, d.GrossPrice, d.NetPrice, d.Tax, nullDecimal(d.Discount),
	).Scan(&d.ID, &d.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting purchase draft: %w", err)
	}

	for _, item := range d.Items {
		_, err := u.tx.ExecContext(ctx, `
			INSERT INTO purchase_draft_items (draft_id, product_id, product_revision, amount)
			VALUES ($1, $2, $3, $4)
		`, d.ID, item.ProductID, item.ProductRevision, item.Amount)
		if err != nil {
			return fmt.Errorf("inserting purchase draft item: %w", err)
		}
	}

	return nil
}

func (u *unitOfWork) PurchaseDraftForUpdate(ctx context.Context, id int64) (*ledger.PurchaseDraft, error) {
	query := `
		SELECT id, created_at, company_id, gross_price, net_price, tax, discount
		FROM purchase_drafts
		WHERE id = $1
		FOR UPDATE
	`

	d, err := scanPurchaseDraft(u.tx.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fault.New(fault.CodePurchaseTransactionNotFound, "purchase draft %d not found", id)
		}

		return nil, fmt.Errorf("locking purchase draft: %w", err)
	}

	if err := u.store.loadDraftItems(ctx, u.tx, d); err != nil {
		return nil, err
	}

	return d, nil
}

func (u *unitOfWork) DeletePurchaseDraft(ctx context.Context, id int64) error {
	if _, err := u.tx.ExecContext(ctx, `DELETE FROM purchase_draft_items WHERE draft_id = $1`, id); err != nil {
		return fmt.Errorf("deleting purchase draft items: %w", err)
	}

	res, err := u.tx.ExecContext(ctx, `DELETE FROM purchase_drafts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting purchase draft: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting purchase draft: %w", err)
	}

	if affected == 0 {
		return fault.New(fault.CodePurchaseTransactionNotFound, "purchase draft %d not found", id)
	}

	return nil
}

func (u *unitOfWork) ProductRevisions(ctx context.Context, refs []ledger.ProductRef) (map[ledger.ProductRef]*ledger.ProductRevision, error) {
	if len(refs) == 0 {
		return map[ledger.ProductRef]*ledger.ProductRevision{}, nil
	}

	var (
		conds []string
		args  []any
	)

	argIdx := 1

	for _, ref := range refs {
		conds = append(conds, fmt.Sprintf("(id = $%d AND revision = $%d)", argIdx, argIdx+1))
		args = append(args, ref.ProductID, ref.Revision)
		argIdx += 2
	}

	query := `
		SELECT id, revision, company_id, name, price, deleted
		FROM products
		WHERE ` + strings.Join(conds, " OR ")

	rows, err := u.tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("resolving product revisions: %w", err)
	}
	defer rows.Close()

	out := make(map[ledger.ProductRef]*ledger.ProductRevision, len(refs))

	for rows.Next() {
		var rev ledger.ProductRevision
		if err := rows.Scan(&rev.ProductID, &rev.Revision, &rev.CompanyID, &rev.Name, &rev.Price, &rev.Deleted); err != nil {
			return nil, fmt.Errorf("scanning product revision: %w", err)
		}

		out[rev.ProductRef] = &rev
	}

	return out, rows.Err()
}
