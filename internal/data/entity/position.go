package entity

type Position struct {
	BaseNoDelete
	Name      string `db:"name"`
	ShortName string `db:"short_name"`
}
