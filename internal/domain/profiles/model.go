package profiles

// Profile son los datos de contacto de un empleado (uno por empleado).
type Profile struct {
	ID          string
	Email       string `validate:"required,email"`
	PhoneNumber string `validate:"required"`
	EmployeeID  string
}

type AddInput struct {
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	EmployeeID  string `json:"employeeId"`
}

// UpdateInput sobrescribe email y teléfono. El empleado no cambia.
type UpdateInput struct {
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

type DTO struct {
	ID             string   `json:"id"`
	Email          string   `json:"email"`
	PhoneNumber    string   `json:"phoneNumber"`
	EmployeeID     string   `json:"employeeId"`
	EmployeeName   string   `json:"employeeName"`
	ProfessionName string   `json:"professionName"`
	ZooAnimals     []string `json:"zooAnimals"`
}
