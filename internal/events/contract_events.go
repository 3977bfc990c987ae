package events

import "contract-system/internal/entities"

const (
	ContractExportedEvent = "contract.exported"
	ContractUpdatedEvent  = "contract.updated"
)

// ContractExported phát ra khi một hợp đồng mới được lưu; listener sẽ
// ghi bản sao sang workbook (thay cho trigger onContractExported trên
// Realtime Database trước đây).
type ContractExported struct {
	Contract entities.Contract
}

func (e ContractExported) Name() string { return ContractExportedEvent }

type ContractUpdated struct {
	Contract entities.Contract
}

func (e ContractUpdated) Name() string { return ContractUpdatedEvent }
