package styled

import (
	"errors"
	"testing"

	"github.com/itsatony/go-cuserr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefinitions(t *testing.T) {
	defs, err := LoadDefinitions("testdata/components.yaml")
	require.NoError(t, err)

	require.NotNil(t, defs.Config)
	assert.Equal(t, "app", defs.Config.ClassPrefix)
	require.Len(t, defs.Components, 2)
	assert.Equal(t, "Button", defs.Components[0].Name)
	assert.Equal(t, "button", defs.Components[0].Tag)
	assert.Equal(t, "button", defs.Components[0].Label)

	_, err = LoadDefinitions("testdata/missing.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgReadDefinitions)
}

func TestParseDefinitions_Validation(t *testing.T) {
	tests := []struct {
		name   string
		yaml   string
		errMsg string
	}{
		{
			name:   "missing tag",
			yaml:   "components:\n  - name: A\n    css: x\n",
			errMsg: ErrMsgInvalidDefinition,
		},
		{
			name:   "invalid tag",
			yaml:   "components:\n  - name: A\n    tag: \"1x\"\n",
			errMsg: ErrMsgInvalidDefinition,
		},
		{
			name:   "invalid name",
			yaml:   "components:\n  - name: \"a b\"\n    tag: div\n",
			errMsg: ErrMsgInvalidDefinition,
		},
		{
			name:   "duplicate names",
			yaml:   "components:\n  - name: A\n    tag: div\n  - name: A\n    tag: span\n",
			errMsg: ErrMsgDuplicateComponent,
		},
		{
			name:   "invalid embedded config",
			yaml:   "config:\n  max_depth: 5000\ncomponents: []\n",
			errMsg: ErrMsgInvalidConfig,
		},
		{
			name:   "malformed yaml",
			yaml:   "components: {",
			errMsg: ErrMsgParseDefinitions,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDefinitions([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)

			var customErr *cuserr.CustomError
			require.True(t, errors.As(err, &customErr))
		})
	}
}

func TestDefinitions_Compile(t *testing.T) {
	defs, err := LoadDefinitions("testdata/components.yaml")
	require.NoError(t, err)

	f, err := New(defs.Options()...)
	require.NoError(t, err)

	set, err := defs.Compile(f)
	require.NoError(t, err)

	assert.Equal(t, 2, set.Len())
	assert.Equal(t, []string{"Button", "Card"}, set.Names())
	assert.Equal(t, []string{"Button", "Card"}, set.SortedNames())

	button, err := set.Get("Button")
	require.NoError(t, err)
	assert.Equal(t, "button", button.Tag())
	assert.Equal(t, "app-1r7uy36-button", button.ClassName())

	card, err := set.Get("Card")
	require.NoError(t, err)
	assert.Equal(t, "app-1cpumgu", card.ClassName())

	assert.Equal(t, 2, f.Sheet().Len())

	_, err = set.Get("Missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgComponentNotFound)
}

func TestDefinitions_Compile_Error(t *testing.T) {
	defs, err := ParseDefinitions([]byte("components:\n  - name: Broken\n    tag: div\n    css: \"a {\"\n"))
	require.NoError(t, err)

	f, err := New()
	require.NoError(t, err)

	_, err = defs.Compile(f)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgInvalidDefinition)

	var customErr *cuserr.CustomError
	require.True(t, errors.As(err, &customErr))
	name, _ := customErr.GetMetadata(MetaKeyComponent)
	assert.Equal(t, "Broken", name)
}

func TestDefinition_Input(t *testing.T) {
	text, err := SerializeStyle(Definition{CSS: "color: red;"}.Input(), 0)
	require.NoError(t, err)
	assert.Equal(t, "color: red;", text)

	text, err = SerializeStyle(Definition{CSS: "color: red;", Label: "x"}.Input(), 0)
	require.NoError(t, err)
	assert.Equal(t, "color: red;\nlabel:x;", text)
}
