package services

import (
	"context"
	"net/http"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"contract-system/internal/directory"
	"contract-system/internal/dto"
	"contract-system/internal/entities"
	"contract-system/internal/events"
	"contract-system/internal/repositories"
	"contract-system/internal/vso"
	apperrors "contract-system/pkg/errors"
	"contract-system/pkg/eventbus"
	"contract-system/pkg/types"
)

// Trạng thái hợp đồng.
const (
	ContractStatusNew = "moi"
)

type ContractService struct {
	contractRepository repositories.ContractRepositoryInterface
	allocator          *vso.Allocator
	bus                *eventbus.Bus
	logger             *zap.Logger
}

func NewContractService(
	contractRepository repositories.ContractRepositoryInterface,
	allocator *vso.Allocator,
	bus *eventbus.Bus,
	logger *zap.Logger,
) *ContractService {
	return &ContractService{
		contractRepository: contractRepository,
		allocator:          allocator,
		bus:                bus,
		logger:             logger,
	}
}

func (s *ContractService) GetContracts(ctx context.Context, filter types.Filter) ([]entities.Contract, uint64, error) {
	return s.contractRepository.GetContracts(ctx, filter)
}

func (s *ContractService) FindContract(ctx context.Context, id uint64) (*entities.Contract, error) {
	return s.contractRepository.FindContract(ctx, id)
}

func (s *ContractService) FindByVSONumber(ctx context.Context, vsoNumber string) (*entities.Contract, error) {
	if !vso.IsFullFormat(vsoNumber) {
		return nil, apperrors.NewBadRequestError("Số VSO không đúng định dạng")
	}
	return s.contractRepository.FindByVSONumber(ctx, vsoNumber)
}

// CreateContract resolve chi nhánh từ tên showroom, cấp số VSO rồi lưu
// hồ sơ. Hợp đồng mới luôn được đẩy lên event bus để mirror sang sheet.
func (s *ContractService) CreateContract(ctx context.Context, in dto.CreateContractDTO) (*entities.Contract, error) {
	branch := directory.Resolve(in.Showroom)
	if branch == nil {
		return nil, apperrors.NewBadRequestError("Không xác định được chi nhánh từ showroom: " + in.Showroom)
	}

	allocation, err := s.allocator.Allocate(ctx, branch.BranchCode, time.Now())
	if err != nil {
		return nil, apperrors.NewHttpError(http.StatusBadRequest, "Không cấp được số VSO", err, nil)
	}
	if allocation.Degraded {
		// Không chặn nghiệp vụ, chỉ ghi nhận để đối soát số sau.
		s.logger.Warn("Hợp đồng dùng số VSO dự phòng",
			zap.String("vso", allocation.Code),
			zap.String("showroom", in.Showroom),
		)
	}

	contract, err := s.buildContract(in, branch.BranchCode, allocation.Code)
	if err != nil {
		return nil, err
	}

	newID, err := s.contractRepository.CreateContract(ctx, *contract)
	if err != nil {
		return nil, err
	}

	created, err := s.contractRepository.FindContract(ctx, newID)
	if err != nil {
		return nil, err
	}

	s.bus.Publish(ctx, events.ContractExported{Contract: *created})

	return created, nil
}

func (s *ContractService) buildContract(in dto.CreateContractDTO, branchCode, vsoNumber string) (*entities.Contract, error) {
	listedPrice, err := parseMoney(in.ListedPrice, "gia_niem_yet")
	if err != nil {
		return nil, err
	}
	contractPrice, err := parseMoney(in.ContractPrice, "gia_hop_dong")
	if err != nil {
		return nil, err
	}
	discountPrice, err := parseNullMoney(in.DiscountPrice, "gia_giam")
	if err != nil {
		return nil, err
	}
	deposit, err := parseNullMoney(in.Deposit, "so_tien_coc")
	if err != nil {
		return nil, err
	}
	loanAmount, err := parseNullMoney(in.LoanAmount, "so_tien_vay")
	if err != nil {
		return nil, err
	}

	// Số phải thu = giá hợp đồng - cọc - vay.
	receivable := contractPrice
	if deposit.Valid {
		receivable = receivable.Sub(deposit.Decimal)
	}
	if loanAmount.Valid {
		receivable = receivable.Sub(loanAmount.Decimal)
	}

	return &entities.Contract{
		DocUID:     uuid.NewString(),
		VSONumber:  vsoNumber,
		Showroom:   in.Showroom,
		BranchCode: branchCode,

		SalesConsultant: in.SalesConsultant,
		CustomerName:    in.CustomerName,
		Phone:           in.Phone,
		Email:           null.NewString(in.Email, in.Email != ""),
		Address:         null.NewString(in.Address, in.Address != ""),
		IdentityNumber:  null.NewString(in.IdentityNumber, in.IdentityNumber != ""),

		Model:    in.Model,
		Variant:  null.NewString(in.Variant, in.Variant != ""),
		Exterior: null.NewString(in.Exterior, in.Exterior != ""),
		Interior: null.NewString(in.Interior, in.Interior != ""),

		ListedPrice:   listedPrice,
		DiscountPrice: discountPrice,
		ContractPrice: contractPrice,
		Deposit:       deposit,
		LoanAmount:    loanAmount,
		Receivable:    decimal.NewNullDecimal(receivable),

		Bank:      null.NewString(in.Bank, in.Bank != ""),
		Status:    ContractStatusNew,
		Gift:      null.NewString(in.Gift, in.Gift != ""),
		OtherGift: null.NewString(in.OtherGift, in.OtherGift != ""),
	}, nil
}

// UpdateContract gộp các trường có giá trị từ DTO vào hồ sơ hiện tại.
// Số VSO không bao giờ đổi sau khi đã cấp.
func (s *ContractService) UpdateContract(ctx context.Context, id uint64, in dto.UpdateContractDTO) (*entities.Contract, error) {
	current, err := s.contractRepository.FindContract(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := *current

	if in.Showroom != "" && in.Showroom != current.Showroom {
		branch := directory.Resolve(in.Showroom)
		if branch == nil {
			return nil, apperrors.NewBadRequestError("Không xác định được chi nhánh từ showroom: " + in.Showroom)
		}
		merged.Showroom = in.Showroom
		merged.BranchCode = branch.BranchCode
	}

	if in.SalesConsultant != "" {
		merged.SalesConsultant = in.SalesConsultant
	}
	if in.CustomerName != "" {
		merged.CustomerName = in.CustomerName
	}
	if in.Phone != "" {
		merged.Phone = in.Phone
	}
	if in.Email != "" {
		merged.Email = null.StringFrom(in.Email)
	}
	if in.Address != "" {
		merged.Address = null.StringFrom(in.Address)
	}
	if in.IdentityNumber != "" {
		merged.IdentityNumber = null.StringFrom(in.IdentityNumber)
	}
	if in.Model != "" {
		merged.Model = in.Model
	}
	if in.Variant != "" {
		merged.Variant = null.StringFrom(in.Variant)
	}
	if in.Exterior != "" {
		merged.Exterior = null.StringFrom(in.Exterior)
	}
	if in.Interior != "" {
		merged.Interior = null.StringFrom(in.Interior)
	}
	if in.Bank != "" {
		merged.Bank = null.StringFrom(in.Bank)
	}
	if in.Status != "" {
		merged.Status = in.Status
	}
	if in.Gift != "" {
		merged.Gift = null.StringFrom(in.Gift)
	}
	if in.OtherGift != "" {
		merged.OtherGift = null.StringFrom(in.OtherGift)
	}

	if in.ListedPrice != "" {
		if merged.ListedPrice, err = parseMoney(in.ListedPrice, "gia_niem_yet"); err != nil {
			return nil, err
		}
	}
	if in.ContractPrice != "" {
		if merged.ContractPrice, err = parseMoney(in.ContractPrice, "gia_hop_dong"); err != nil {
			return nil, err
		}
	}
	if in.DiscountPrice != "" {
		if merged.DiscountPrice, err = parseNullMoney(in.DiscountPrice, "gia_giam"); err != nil {
			return nil, err
		}
	}
	if in.Deposit != "" {
		if merged.Deposit, err = parseNullMoney(in.Deposit, "so_tien_coc"); err != nil {
			return nil, err
		}
	}
	if in.LoanAmount != "" {
		if merged.LoanAmount, err = parseNullMoney(in.LoanAmount, "so_tien_vay"); err != nil {
			return nil, err
		}
	}

	receivable := merged.ContractPrice
	if merged.Deposit.Valid {
		receivable = receivable.Sub(merged.Deposit.Decimal)
	}
	if merged.LoanAmount.Valid {
		receivable = receivable.Sub(merged.LoanAmount.Decimal)
	}
	merged.Receivable = decimal.NewNullDecimal(receivable)

	if err := s.contractRepository.UpdateContract(ctx, id, merged); err != nil {
		return nil, err
	}

	updated, err := s.contractRepository.FindContract(ctx, id)
	if err != nil {
		return nil, err
	}

	s.bus.Publish(ctx, events.ContractUpdated{Contract: *updated})

	return updated, nil
}

func (s *ContractService) DeleteContract(ctx context.Context, id uint64) error {
	return s.contractRepository.DeleteContract(ctx, id)
}

func parseMoney(raw, field string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, apperrors.NewBadRequestError("Trường " + field + " không phải số tiền hợp lệ")
	}
	if d.IsNegative() {
		return decimal.Zero, apperrors.NewBadRequestError("Trường " + field + " không được âm")
	}
	return d, nil
}

func parseNullMoney(raw, field string) (decimal.NullDecimal, error) {
	if raw == "" {
		return decimal.NullDecimal{}, nil
	}
	d, err := parseMoney(raw, field)
	if err != nil {
		return decimal.NullDecimal{}, err
	}
	return decimal.NewNullDecimal(d), nil
}
