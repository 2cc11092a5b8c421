package entities

type DeviceType struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}
