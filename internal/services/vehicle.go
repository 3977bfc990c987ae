package services

import (
	"context"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"

	"contract-system/internal/dto"
	"contract-system/internal/entities"
	"contract-system/internal/repositories"
	apperrors "contract-system/pkg/errors"
	"contract-system/pkg/types"
)

type VehicleService struct {
	vehicleRepository repositories.VehicleRepositoryInterface
	logger            *zap.Logger
}

func NewVehicleService(vehicleRepository repositories.VehicleRepositoryInterface, logger *zap.Logger) *VehicleService {
	return &VehicleService{
		vehicleRepository: vehicleRepository,
		logger:            logger,
	}
}

func (s *VehicleService) GetVehicles(ctx context.Context, filter types.Filter) ([]entities.Vehicle, uint64, error) {
	return s.vehicleRepository.GetVehicles(ctx, filter)
}

func (s *VehicleService) FindVehicle(ctx context.Context, id uint64) (*entities.Vehicle, error) {
	return s.vehicleRepository.FindVehicle(ctx, id)
}

func (s *VehicleService) CreateVehicle(ctx context.Context, in dto.CreateVehicleDTO) (*entities.Vehicle, error) {
	listedPrice, err := parseMoney(in.ListedPrice, "gia_niem_yet")
	if err != nil {
		return nil, err
	}

	vehicle := entities.Vehicle{
		VIN:         in.VIN,
		Model:       in.Model,
		Variant:     null.NewString(in.Variant, in.Variant != ""),
		Exterior:    null.NewString(in.Exterior, in.Exterior != ""),
		Interior:    null.NewString(in.Interior, in.Interior != ""),
		ListedPrice: listedPrice,
		Status:      "trong_kho",
		BranchCode:  null.NewString(in.BranchCode, in.BranchCode != ""),
	}

	newID, err := s.vehicleRepository.CreateVehicle(ctx, vehicle)
	if err != nil {
		return nil, err
	}

	return s.vehicleRepository.FindVehicle(ctx, newID)
}

func (s *VehicleService) UpdateVehicleStatus(ctx context.Context, id uint64, in dto.UpdateVehicleStatusDTO) (*entities.Vehicle, error) {
	if err := s.vehicleRepository.UpdateVehicleStatus(ctx, id, in.Status); err != nil {
		return nil, err
	}
	return s.vehicleRepository.FindVehicle(ctx, id)
}

func (s *VehicleService) DeleteVehicle(ctx context.Context, id uint64) error {
	vehicle, err := s.vehicleRepository.FindVehicle(ctx, id)
	if err != nil {
		return err
	}
	// Xe đã bán phải giữ lại để đối soát.
	if vehicle.Status == "da_ban" {
		return apperrors.NewBadRequestError("Không xóa được xe đã bán")
	}
	return s.vehicleRepository.DeleteVehicle(ctx, id)
}
