package evalbuilder

import (
	"fmt"

	material "github.com/kinderchess/kinder/pkg/eval/material"
	pst "github.com/kinderchess/kinder/pkg/eval/pst"
)

func Get(key string) func() interface{} {
	return func() interface{} {
		switch key {
		case "", "pst":
			return pst.NewEvaluationService()
		case "material":
			return material.NewEvaluationService()
		}
		panic(fmt.Errorf("bad eval %v", key))
	}
}
