package commands_test

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"

	"github.com/sergeizaitcev/metricsender/pkg/commands"
)

type Config struct {
	commands.UnimplementedConfig

	Field string `env:"FIELD" json:"field"`

	Struct struct {
		Field2 int `env:"FIELD_2" json:"field_2"`
	} `json:"struct"`

	Args []string `json:"args"`
}

func (c *Config) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.Field, "f1", "1", "usage 1")
	fs.IntVar(&c.Struct.Field2, "f2", 2, "usage 2")
}

func (c *Config) SetArgs(args []string) { c.Args = args }
func (c *Config) ArgsUsage() string     { return "[args...]" }

func ExampleCommand() {
	run := func(_ context.Context, c *Config) error {
		b, err := json.MarshalIndent(c, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(b))
		return nil
	}

	cmd := commands.NewArgs("test", []string{"-f2", "3", "cpu.usage", "42.5"}, run)
	if err := cmd.Execute(context.Background()); err != nil {
		fmt.Println(err)
	}

	// Output:
	// {
	//   "field": "1",
	//   "struct": {
	//     "field_2": 3
	//   },
	//   "args": [
	//     "cpu.usage",
	//     "42.5"
	//   ]
	// }
}
