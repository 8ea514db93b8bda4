package professions

// Profession agrupa empleados. Borrarla borra sus empleados.
type Profession struct {
	ID   string
	Name string `validate:"required"`
}

type AddInput struct {
	Name string `json:"name"`
}

type UpdateInput struct {
	Name string `json:"name"`
}

type DTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func ToDTO(p Profession) DTO {
	return DTO{ID: p.ID, Name: p.Name}
}
