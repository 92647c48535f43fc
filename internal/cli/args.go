package cli

import (
	"github.com/spf13/pflag"

	"github.com/AlexanderBrevig/mdb/internal/action"
	"github.com/AlexanderBrevig/mdb/internal/mdberr"
)

func addTemplateFlag(fs *pflag.FlagSet, p *string) {
	fs.StringVarP(p, "template", "t", "", "Select a template")
}

// classify turns the -t value and the optional positional argument into a
// Named. The positional value is taken as a template id when no template
// was given and that template exists.
func (a *app) classify(templateFlag string, args []string) (action.Named, error) {
	template, err := a.parseTemplateArg(templateFlag)
	if err != nil {
		return action.Named{}, err
	}

	var name *string
	if len(args) > 0 {
		template, name = a.parseNameArg(args[0], template)
	}
	return action.NewNamed(template, name), nil
}

func (a *app) parseTemplateArg(value string) (*string, error) {
	if value == "" {
		return nil, nil
	}
	a.log.WithField("template", value).Info("value for template")
	if !a.store.Known(value) {
		return nil, mdberr.InvalidInput("No template named `%s`", value)
	}
	return &value, nil
}

func (a *app) parseNameArg(value string, template *string) (*string, *string) {
	if template == nil && a.store.Known(value) {
		a.log.WithField("name", value).Info("value for name assumed to be template")
		return &value, nil
	}
	a.log.WithField("name", value).Info("value for name")
	return template, &value
}
