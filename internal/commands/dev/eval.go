package dev

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/PancyStudios/PancyGuardGo/pkg/config"
	"github.com/PancyStudios/PancyGuardGo/pkg/database"
	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/PancyStudios/PancyGuardGo/pkg/logger"
	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"
)

// createEvalCommand creates the eval command
func createEvalCommand() *discord.Command {
	return discord.NewCommand(
		"eval",
		"Evaluate Go code inside the running bot (dangerous)",
		"dev",
		evalHandler,
	).WithUsage("eval <code>").
		WithExamples("eval 1 + 2", "eval Config.Prefix").
		AsDev()
}

func evalHandler(ctx *discord.CommandContext) error {
	start := time.Now()

	code := strings.Join(ctx.Args, " ")
	code = strings.TrimPrefix(code, "```go")
	code = strings.TrimPrefix(code, "```")
	code = strings.TrimSuffix(code, "```")
	code = strings.TrimSpace(code)
	if code == "" {
		return ctx.Reply("Nothing to evaluate")
	}

	i := interp.New(interp.Options{})
	if err := i.Use(stdlib.Symbols); err != nil {
		return ctx.Reply(fmt.Sprintf("❌ Error loading stdlib: %v", err))
	}

	// Expose the running bot's internals as globals inside the script
	botExports := map[string]reflect.Value{
		"Ctx":     reflect.ValueOf(ctx),
		"Bot":     reflect.ValueOf(ctx.Client),
		"Session": reflect.ValueOf(ctx.Session),
		"DB":      reflect.ValueOf(database.Get()),
		"Config":  reflect.ValueOf(config.Get()),
	}
	if err := i.Use(interp.Exports{
		"github.com/PancyStudios/PancyGuardGo/internal/commands/dev/dev": botExports,
	}); err != nil {
		return ctx.Reply(fmt.Sprintf("❌ Error registering variables: %v", err))
	}
	if _, err := i.Eval(`import . "github.com/PancyStudios/PancyGuardGo/internal/commands/dev"`); err != nil {
		return ctx.Reply(fmt.Sprintf("❌ Error importing variables: %v", err))
	}

	res, err := i.Eval(code)

	var output string
	if err != nil {
		output = fmt.Sprintf("❌ **Execution error:**\n```go\n%v\n```", err)
	} else {
		var resStr string
		if res.IsValid() {
			resStr = fmt.Sprintf("%#v", res.Interface())
		} else {
			resStr = "nil"
		}
		if len(resStr) > 1900 {
			resStr = resStr[:1900] + "... (truncated)"
		}
		output = fmt.Sprintf("✅ **Result:**\n```go\n%s\n```", resStr)
	}

	logger.Debug(fmt.Sprintf("Eval completed in %s", time.Since(start)), "DevEval")
	return ctx.Reply(output)
}
