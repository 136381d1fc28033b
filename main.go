// Command corpora builds in-memory bibliographic corpora and answers
// time-sliced statistical queries over them.
package main

import (
	"github.com/custodia-labs/corpora-cli/internal/adapters/driving/cli"
)

func main() {
	cli.Execute()
}
