package querybuilder

// Order is the direction of an ORDER BY expression. Any value other than
// Desc is emitted as ASC.
type Order string

const (
	Asc  Order = "ASC"
	Desc Order = "DESC"
)

type orderClause struct {
	expr string
	dir  Order
}

// String renders the clause as emitted inside ORDER BY: the expression
// immediately followed by the direction keyword.
func (o orderClause) String() string {
	return o.expr + " " + o.dir.String()
}

func (o Order) String() string {
	if o == Desc {
		return string(Desc)
	}
	return string(Asc)
}
