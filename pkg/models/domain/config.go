package domain

import "fmt"

type ProfileType string

const (
	ProfileTypeCSV    ProfileType = "csv"
	ProfileTypeDuckDB ProfileType = "duckdb"
)

type ConfigProfile struct {
	Name string
	Type ProfileType
}

func (c ConfigProfile) String() string {
	return fmt.Sprintf("%s:%s", c.Type, c.Name)
}
