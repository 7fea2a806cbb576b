package get_available_slots

import "github.com/m04kA/SMC-SalonBooking/internal/domain"

// OpenSlotResponse элемент списка свободных слотов
type OpenSlotResponse struct {
	StartsAt int64    `json:"startsAt"` // миллисекунды Unix
	Stylists []string `json:"stylists,omitempty"`
}

// FromDomainList конвертирует свободные слоты в HTTP ответ
func FromDomainList(slots []domain.OpenSlot) []OpenSlotResponse {
	response := make([]OpenSlotResponse, len(slots))
	for i, s := range slots {
		response[i] = OpenSlotResponse{
			StartsAt: s.StartsAt.UnixMilli(),
			Stylists: s.Stylists,
		}
	}
	return response
}
