package cmd

import (
	"flag"

	"github.com/etnz/transact/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// flagPredictors are the value predictors of flags, by flag name. Other
// flags accept anything.
var flagPredictors = map[string]complete.Predictor{
	flagType:    predict.Set{"revenue", "expense"},
	flagDate:    predict.Set{"0d", "-1d", "-1w", "-1m"},
	"period":    predict.Set{"day", "week", "month", "quarter", "year"},
	"config":    predict.Files("*.json"),
	"data-file": predict.Files("*.json"),
	"currency":  predict.Set{"USD", "EUR", "GBP", "JPY", "CHF"},
	"o":         predict.Files("*.html"),
}

// Completion returns the shell completion of the application, as described by
// the registered subcommands and the global flags of fs.
func Completion(fs *flag.FlagSet) *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: flagsCompletion(fs),
	}
	for _, sc := range subcommandsByGroup() {
		f := flag.NewFlagSet(sc.cmd.Name(), flag.ContinueOnError)
		sc.cmd.SetFlags(f)
		sub := &complete.Command{Flags: flagsCompletion(f)}
		switch sc.cmd.(type) {
		case *sortCmd:
			sub.Args = predict.Set{"date", "amount"}
		case *topicCmd:
			if topics, err := docs.GetAllTopics(); err == nil {
				sub.Args = predict.Set(append(topics, "*"))
			}
		case *listPersonsCmd, *listTxCmd, *clearCmd, *clearSortCmd, *exportCmd, *configCmd:
			sub.Args = predict.Nothing
		default:
			sub.Args = predict.Something
		}
		root.Sub[sc.cmd.Name()] = sub
	}
	for _, name := range []string{"help", "flags", "commands"} {
		root.Sub[name] = &complete.Command{Args: predict.Something}
	}
	return root
}

func flagsCompletion(fs *flag.FlagSet) map[string]complete.Predictor {
	flags := make(map[string]complete.Predictor)
	fs.VisitAll(func(f *flag.Flag) {
		if p, ok := flagPredictors[f.Name]; ok {
			flags[f.Name] = p
			return
		}
		if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			flags[f.Name] = predict.Nothing
			return
		}
		flags[f.Name] = predict.Something
	})
	return flags
}
