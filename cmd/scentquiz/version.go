package main

import (
	"context"
	"fmt"

	"github.com/a-h/scentquiz"
)

type VersionCommand struct {
}

func (c VersionCommand) Run(ctx context.Context) (err error) {
	fmt.Println(scentquiz.Version)
	return nil
}
