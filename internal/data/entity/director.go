package entity

type Director struct {
	Base
	Name string `db:"name"`
}
