package entities

// Device — строка таблицы devices. additionalProperties хранится как
// непрозрачный JSON-текст и разбирается только при чтении карточки.
type Device struct {
	ID                   uint64 `json:"id"`
	Name                 string `json:"name"`
	IsEnabled            bool   `json:"isEnabled"`
	AdditionalProperties string `json:"additionalProperties"`
	DeviceTypeID         uint64 `json:"deviceTypeId"`
}
