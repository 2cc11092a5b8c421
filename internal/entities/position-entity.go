package entities

type Position struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}
