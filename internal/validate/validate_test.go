package validate

import (
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
)

func TestCheckNonEmptyString(t *testing.T) {
	schema := Rules(Rule{Tag: "required", Message: "Name is required"})

	require.NoError(t, Check(schema, "alice"))

	err := Check(schema, "")
	require.Error(t, err)
	require.Equal(t, "Name is required", err.Error())
}

func TestCheckJoinsEveryViolatedRuleInOrder(t *testing.T) {
	schema := Rules(
		Rule{Tag: "min=8", Message: "Password must be at least 8 characters"},
		Rule{Tag: "containsany=0123456789", Message: "Password must contain a digit"},
		Rule{Tag: "max=64", Message: "Password is too long"},
	)

	err := Check(schema, "abc")
	require.Error(t, err)
	require.Equal(t, "Password must be at least 8 characters\nPassword must contain a digit", err.Error())

	var issuesErr *IssuesError
	require.ErrorAs(t, err, &issuesErr)
	require.Len(t, issuesErr.Issues, 2)
	require.Equal(t, "min=8", issuesErr.Issues[0].Code)
}

func TestRulesDefaultMessages(t *testing.T) {
	err := Check(Rules(Rule{Tag: "min=3"}), "ab")
	require.Error(t, err)
	require.Equal(t, "value must be at least 3", err.Error())
}

func TestRulesInvalidTagReportsIssueInsteadOfPanicking(t *testing.T) {
	var result Result
	require.NotPanics(t, func() {
		result = Rules(Rule{Tag: "definitely_not_a_tag"}).SafeParse("x")
	})
	require.False(t, result.Success)
	require.Len(t, result.Issues, 1)
	require.Equal(t, "invalid_rule", result.Issues[0].Code)
}

func TestFuncAdaptsSchemaForPrompts(t *testing.T) {
	fn := Func(Rules(Rule{Tag: "required", Message: "required"}, Rule{Tag: "email", Message: "not an email"}))
	require.NoError(t, fn("a@example.com"))
	err := fn("")
	require.Error(t, err)
	require.Equal(t, "required\nnot an email", err.Error())
}

func TestCheckDoesNotMutateValue(t *testing.T) {
	type payload struct {
		Name string `yaml:"name" validate:"required"`
	}
	value := &payload{Name: ""}
	_ = Check(Struct(), value)
	require.Equal(t, "", value.Name)
}

func TestStructSchemaUsesYamlPathsAndMessages(t *testing.T) {
	type inner struct {
		Run string `yaml:"run" validate:"required"`
	}
	type outer struct {
		Name  string  `yaml:"name" validate:"required"`
		Items []inner `yaml:"items" validate:"dive"`
	}
	schema := Struct(WithMessage("required", "{field} must be set"))
	result := schema.SafeParse(outer{Items: []inner{{}}})
	require.False(t, result.Success)
	require.Len(t, result.Issues, 2)
	require.Equal(t, "name", result.Issues[0].Path)
	require.Equal(t, "name must be set", result.Issues[0].Message)
	require.Equal(t, "items[0].run", result.Issues[1].Path)
}

func TestStructSchemaCustomValidation(t *testing.T) {
	type cfg struct {
		File string `yaml:"file" validate:"lower"`
	}
	schema := Struct(WithValidation("lower", func(fl validator.FieldLevel) bool {
		return strings.ToLower(fl.Field().String()) == fl.Field().String()
	}, "{field} must be lower case"))
	require.NoError(t, Check(schema, cfg{File: "menu.yaml"}))
	err := Check(schema, cfg{File: "Menu.yaml"})
	require.Error(t, err)
	require.Equal(t, "file must be lower case", err.Error())
}

func TestStructSchemaRejectsNonStruct(t *testing.T) {
	result := Struct().SafeParse("nope")
	require.False(t, result.Success)
	require.Equal(t, "invalid_type", result.Issues[0].Code)
}

func TestCheckNilSchemaAccepts(t *testing.T) {
	require.NoError(t, Check(nil, "anything"))
}
