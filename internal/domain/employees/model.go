package employees

type Employee struct {
	ID           string
	FullName     string `validate:"required"`
	Age          int    `validate:"gte=0"`
	ProfessionID string
}

type AddInput struct {
	FullName     string `json:"fullName"`
	Age          int    `json:"age"`
	ProfessionID string `json:"professionId"`
}

type UpdateInput struct {
	FullName     string `json:"fullName"`
	Age          int    `json:"age"`
	ProfessionID string `json:"professionId"`
}

type DTO struct {
	ID             string `json:"id"`
	FullName       string `json:"fullName"`
	Age            int    `json:"age"`
	ProfessionName string `json:"professionName"`
}
