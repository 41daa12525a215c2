package model

import "fmt"

type Node interface{}

type Visitor interface {
	Visit(Node) Visitor
}

// Walk traverses the configuration depth first, calling v.Visit(nil) after
// the children of a node have been visited
func Walk(v Visitor, node Node) {
	if v = v.Visit(node); v == nil {
		return
	}

	switch n := node.(type) {
	case *Root:
		if n.Settings != nil {
			Walk(v, n.Settings)
		}

		if n.Log != nil {
			Walk(v, n.Log)
		}

		if n.Monitor != nil {
			Walk(v, n.Monitor)
		}

		for _, g := range n.Critical {
			Walk(v, g)
		}

		for _, c := range n.Commands {
			Walk(v, c)
		}

	case *Settings, *Log, *Monitor, *CriticalGroup, *Command:
		// nothing further

	default:
		panic(fmt.Sprintf("model.Walk: unexpected node type %T", n))
	}

	v.Visit(nil)
}

type WalkFunc func(Node) bool

func (fn WalkFunc) Visit(node Node) Visitor {
	if fn(node) {
		return fn
	}
	return nil
}
