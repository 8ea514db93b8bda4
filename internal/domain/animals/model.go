package animals

type ZooAnimal struct {
	ID           string
	Name         string `validate:"required"`
	Age          int    `validate:"gte=0"`
	IsEndangered bool
	SpeciesID    string
}

type AddInput struct {
	Name         string `json:"name"`
	Age          int    `json:"age"`
	IsEndangered bool   `json:"isEndangered"`
	SpeciesID    string `json:"speciesId"`
}

type UpdateInput struct {
	Name         string `json:"name"`
	Age          int    `json:"age"`
	IsEndangered bool   `json:"isEndangered"`
	SpeciesID    string `json:"speciesId"`
}

// DTO muestra la especie por nombre común.
type DTO struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Species      string `json:"species"`
	Age          int    `json:"age"`
	IsEndangered bool   `json:"isEndangered"`
}
