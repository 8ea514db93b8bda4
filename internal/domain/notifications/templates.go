package notifications

import (
	"fmt"
	"html"
)

// Template es el asunto y cuerpo de un aviso ya renderizado.
type Template struct {
	Subject string
	Body    string
	IsHTML  bool
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}

func EmployeeAdded(fullName string, age int, profession, caller string) Template {
	return Template{
		Subject: "A new employee has been added",
		Body: fmt.Sprintf("Employee '%s' (Age %d, Profession: %s) was added by %s.",
			fullName, age, orUnknown(profession), caller),
	}
}

func EmployeeDeleted(fullName string, age int, profession, caller string) Template {
	return Template{
		Subject: "An employee has been deleted",
		Body: fmt.Sprintf("Employee '%s' (Age %d, Profession: %s) was deleted by %s.",
			fullName, age, orUnknown(profession), caller),
	}
}

func SpeciesAdded(commonName, scientificName, caller string) Template {
	return Template{
		Subject: "A new species has been added",
		Body:    fmt.Sprintf("Species '%s' (%s) was added by %s.", commonName, scientificName, caller),
	}
}

func SpeciesDeleted(commonName, scientificName, caller string) Template {
	return Template{
		Subject: "A species has been deleted",
		Body:    fmt.Sprintf("Species '%s' (%s) was deleted by %s.", commonName, scientificName, caller),
	}
}

func AnimalAdded(name, species string, age int, caller string) Template {
	return Template{
		Subject: "A new animal has been added",
		Body: fmt.Sprintf("Animal '%s' (Species: %s, Age: %d) was added by %s.",
			name, orUnknown(species), age, caller),
	}
}

// AnimalDeleted no incluye la edad.
func AnimalDeleted(name, species, caller string) Template {
	return Template{
		Subject: "An animal has been deleted",
		Body: fmt.Sprintf("Animal '%s' (Species: %s) was deleted by %s.",
			name, orUnknown(species), caller),
	}
}

func UserWelcome(name string) Template {
	return Template{
		Subject: "Welcome!",
		Body: fmt.Sprintf(
			"<!DOCTYPE html><html><body><h1>Welcome, %s!</h1>"+
				"<p>Your account for the zoo management application has been created.</p></body></html>",
			html.EscapeString(name)),
		IsHTML: true,
	}
}
