package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"contract-system/internal/entities"
	apperrors "contract-system/pkg/errors"
	"contract-system/pkg/types"
)

const contractTable = "contracts"

// Bản đồ trường filter/sort -> cột.
var contractMap = map[string]string{
	"id":         "c.id",
	"so_vso":     "c.vso_number",
	"ma_dms":     "c.branch_code",
	"ten_kh":     "c.customer_name",
	"dong_xe":    "c.model",
	"tinh_trang": "c.status",
	"tvbh":       "c.sales_consultant",
	"created_at": "c.created_at",
}

var contractColumns = []string{
	"c.id", "c.doc_uid", "c.vso_number", "c.showroom", "c.branch_code",
	"c.sales_consultant", "c.customer_name", "c.phone", "c.email", "c.address", "c.identity_number",
	"c.model", "c.variant", "c.exterior", "c.interior",
	"c.listed_price", "c.discount_price", "c.contract_price", "c.deposit", "c.loan_amount", "c.receivable",
	"c.bank", "c.status", "c.gift", "c.other_gift", "c.invoice_date",
	"c.created_at", "c.updated_at",
}

type ContractRepositoryInterface interface {
	GetContracts(ctx context.Context, filter types.Filter) ([]entities.Contract, uint64, error)
	FindContract(ctx context.Context, id uint64) (*entities.Contract, error)
	FindByVSONumber(ctx context.Context, vsoNumber string) (*entities.Contract, error)
	CreateContract(ctx context.Context, contract entities.Contract) (uint64, error)
	UpdateContract(ctx context.Context, id uint64, contract entities.Contract) error
	DeleteContract(ctx context.Context, id uint64) error
}

type ContractRepository struct {
	storage *pgxpool.Pool
	logger  *zap.Logger
}

func NewContractRepository(storage *pgxpool.Pool, logger *zap.Logger) ContractRepositoryInterface {
	return &ContractRepository{storage: storage, logger: logger}
}

func scanContract(row pgx.Row) (*entities.Contract, error) {
	var c entities.Contract

	err := row.Scan(
		&c.ID, &c.DocUID, &c.VSONumber, &c.Showroom, &c.BranchCode,
		&c.SalesConsultant, &c.CustomerName, &c.Phone, &c.Email, &c.Address, &c.IdentityNumber,
		&c.Model, &c.Variant, &c.Exterior, &c.Interior,
		&c.ListedPrice, &c.DiscountPrice, &c.ContractPrice, &c.Deposit, &c.LoanAmount, &c.Receivable,
		&c.Bank, &c.Status, &c.Gift, &c.OtherGift, &c.InvoiceDate,
		&c.CreatedAt, &c.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("lỗi scan contract: %w", err)
	}

	return &c, nil
}

func (r *ContractRepository) GetContracts(ctx context.Context, filter types.Filter) ([]entities.Contract, uint64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	applySearch := func(b sq.SelectBuilder) sq.SelectBuilder {
		if filter.Search != "" {
			pat := "%" + filter.Search + "%"
			return b.Where(sq.Or{
				sq.ILike{"c.customer_name": pat},
				sq.ILike{"c.vso_number": pat},
				sq.ILike{"c.phone": pat},
			})
		}
		return b
	}

	applyFilters := func(b sq.SelectBuilder) sq.SelectBuilder {
		for field, value := range filter.Filter {
			if col, ok := contractMap[field]; ok {
				b = b.Where(sq.Eq{col: value})
			}
		}
		return b
	}

	// 1. COUNT
	countBuilder := applyFilters(applySearch(
		psql.Select("COUNT(c.id)").From(contractTable + " AS c"),
	))

	var total uint64
	sqlCount, argsCount, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}
	if err := r.storage.QueryRow(ctx, sqlCount, argsCount...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entities.Contract{}, 0, nil
	}

	// 2. SELECT
	baseBuilder := applyFilters(applySearch(
		psql.Select(contractColumns...).From(contractTable + " AS c"),
	))

	orderApplied := false
	for field, dir := range filter.Sort {
		if col, ok := contractMap[field]; ok {
			baseBuilder = baseBuilder.OrderBy(col + " " + dir)
			orderApplied = true
		}
	}
	if !orderApplied {
		baseBuilder = baseBuilder.OrderBy("c.id DESC")
	}

	if filter.Limit > 0 {
		baseBuilder = baseBuilder.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		baseBuilder = baseBuilder.Offset(uint64(filter.Offset))
	}

	query, args, err := baseBuilder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	contracts := make([]entities.Contract, 0, filter.Limit)
	for rows.Next() {
		contract, err := scanContract(rows)
		if err != nil {
			return nil, 0, err
		}
		contracts = append(contracts, *contract)
	}

	return contracts, total, nil
}

func (r *ContractRepository) findOne(ctx context.Context, where sq.Eq) (*entities.Contract, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	queryBuilder := psql.Select(contractColumns...).From(contractTable + " AS c").Where(where)

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}
	return scanContract(r.storage.QueryRow(ctx, query, args...))
}

func (r *ContractRepository) FindContract(ctx context.Context, id uint64) (*entities.Contract, error) {
	return r.findOne(ctx, sq.Eq{"c.id": id})
}

func (r *ContractRepository) FindByVSONumber(ctx context.Context, vsoNumber string) (*entities.Contract, error) {
	return r.findOne(ctx, sq.Eq{"c.vso_number": vsoNumber})
}

func (r *ContractRepository) CreateContract(ctx context.Context, contract entities.Contract) (uint64, error) {
	query := `
		INSERT INTO contracts (
			doc_uid, vso_number, showroom, branch_code,
			sales_consultant, customer_name, phone, email, address, identity_number,
			model, variant, exterior, interior,
			listed_price, discount_price, contract_price, deposit, loan_amount, receivable,
			bank, status, gift, other_gift, invoice_date,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
		        $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, NOW(), NOW())
		RETURNING id
	`
	var newID uint64
	err := r.storage.QueryRow(ctx, query,
		contract.DocUID, contract.VSONumber, contract.Showroom, contract.BranchCode,
		contract.SalesConsultant, contract.CustomerName, contract.Phone, contract.Email, contract.Address, contract.IdentityNumber,
		contract.Model, contract.Variant, contract.Exterior, contract.Interior,
		contract.ListedPrice, contract.DiscountPrice, contract.ContractPrice, contract.Deposit, contract.LoanAmount, contract.Receivable,
		contract.Bank, contract.Status, contract.Gift, contract.OtherGift, contract.InvoiceDate,
	).Scan(&newID)

	return newID, err
}

func (r *ContractRepository) UpdateContract(ctx context.Context, id uint64, contract entities.Contract) error {
	query := `
		UPDATE contracts
		SET showroom = $1, branch_code = $2, sales_consultant = $3, customer_name = $4,
		    phone = $5, email = $6, address = $7, identity_number = $8,
		    model = $9, variant = $10, exterior = $11, interior = $12,
		    listed_price = $13, discount_price = $14, contract_price = $15,
		    deposit = $16, loan_amount = $17, receivable = $18,
		    bank = $19, status = $20, gift = $21, other_gift = $22, invoice_date = $23,
		    updated_at = NOW()
		WHERE id = $24
	`
	result, err := r.storage.Exec(ctx, query,
		contract.Showroom, contract.BranchCode, contract.SalesConsultant, contract.CustomerName,
		contract.Phone, contract.Email, contract.Address, contract.IdentityNumber,
		contract.Model, contract.Variant, contract.Exterior, contract.Interior,
		contract.ListedPrice, contract.DiscountPrice, contract.ContractPrice,
		contract.Deposit, contract.LoanAmount, contract.Receivable,
		contract.Bank, contract.Status, contract.Gift, contract.OtherGift, contract.InvoiceDate,
		id,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *ContractRepository) DeleteContract(ctx context.Context, id uint64) error {
	result, err := r.storage.Exec(ctx, `DELETE FROM contracts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
