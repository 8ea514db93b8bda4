package assignments

import "strings"

// Assignment une un empleado con un animal a su cargo. La clave es el par.
type Assignment struct {
	EmployeeID  string
	ZooAnimalID string
}

type AddInput struct {
	EmployeeID  string `json:"employeeId"`
	ZooAnimalID string `json:"zooAnimalId"`
}

// PairInput identifica una asignación existente (borrado por body).
type PairInput = AddInput

type DTO struct {
	EmployeeID     string `json:"employeeId"`
	EmployeeName   string `json:"employeeName"`
	ProfessionName string `json:"professionName"`
	ZooAnimalID    string `json:"zooAnimalId"`
	AnimalName     string `json:"animalName"`
	SpeciesName    string `json:"speciesName"`
}

const keySep = ":"

// Key arma la clave compuesta usada por el storage genérico.
func Key(employeeID, zooAnimalID string) string {
	return employeeID + keySep + zooAnimalID
}

func SplitKey(key string) (employeeID, zooAnimalID string, ok bool) {
	return strings.Cut(key, keySep)
}

func (a Assignment) Key() string {
	return Key(a.EmployeeID, a.ZooAnimalID)
}
