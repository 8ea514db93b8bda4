package species

// Species es el catálogo de especies. No se puede borrar mientras haya
// animales que la referencian.
type Species struct {
	ID             string
	CommonName     string `validate:"required"`
	ScientificName string `validate:"required"`
	Habitat        string
	Diet           string
}

type AddInput struct {
	CommonName     string `json:"commonName"`
	ScientificName string `json:"scientificName"`
	Habitat        string `json:"habitat"`
	Diet           string `json:"diet"`
}

// UpdateInput es parcial: nil = no tocar.
type UpdateInput struct {
	CommonName     *string `json:"commonName"`
	ScientificName *string `json:"scientificName"`
	Habitat        *string `json:"habitat"`
	Diet           *string `json:"diet"`
}

type DTO struct {
	ID             string `json:"id"`
	CommonName     string `json:"commonName"`
	ScientificName string `json:"scientificName"`
	Habitat        string `json:"habitat"`
	Diet           string `json:"diet"`
}

func ToDTO(s Species) DTO {
	return DTO{
		ID:             s.ID,
		CommonName:     s.CommonName,
		ScientificName: s.ScientificName,
		Habitat:        s.Habitat,
		Diet:           s.Diet,
	}
}
