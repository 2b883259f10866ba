package ast

// Visitor is implemented by passes that traverse the expression tree
// without type switching on node kinds.
type Visitor interface {
	VisitLiteral(node *Literal) interface{}
	VisitUnary(node *Unary) interface{}
	VisitBinary(node *Binary) interface{}
	VisitGrouping(node *Grouping) interface{}
}
