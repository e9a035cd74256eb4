package styled

import (
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	g "maragu.dev/gomponents"
)

// recordingRenderer captures the arguments of every CreateNode call.
type recordingRenderer struct {
	mu    sync.Mutex
	tags  []string
	props []Props
}

func (r *recordingRenderer) CreateNode(tag string, props Props) (g.Node, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tags = append(r.tags, tag)
	r.props = append(r.props, props)
	return g.Text(tag), nil
}

func (r *recordingRenderer) last() (string, Props) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.tags[len(r.tags)-1], r.props[len(r.props)-1]
}

// countingEngine returns a fixed class and counts compile calls.
type countingEngine struct {
	mu    sync.Mutex
	class string
	calls int
	err   error
}

func (e *countingEngine) Compile(input StyleInput) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.calls++
	if e.err != nil {
		return "", e.err
	}
	return e.class, nil
}

func newTestFactory(t *testing.T, opts ...Option) (*Factory, *recordingRenderer) {
	t.Helper()
	renderer := &recordingRenderer{}
	f, err := New(append([]Option{WithRenderer(renderer), WithLogger(zap.NewNop())}, opts...)...)
	require.NoError(t, err)
	return f, renderer
}

func TestNew(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		f, err := New()
		require.NoError(t, err)
		assert.NotNil(t, f.Sheet())
		assert.IsType(t, &HTMLRenderer{}, f.Renderer())
		assert.NotNil(t, f.Normalizer())
	})

	t.Run("custom engine", func(t *testing.T) {
		engine := &countingEngine{class: "x"}
		f, err := New(WithEngine(engine))
		require.NoError(t, err)
		assert.Same(t, engine, f.Engine())
		assert.Nil(t, f.Sheet())
	})

	t.Run("nil collaborators rejected", func(t *testing.T) {
		_, err := New(WithEngine(nil))
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgNilEngine)

		_, err = New(WithRenderer(nil))
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgNilRenderer)

		_, err = New(WithNormalizer(nil))
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgNilNormalizer)
	})

	t.Run("MustNew panics on error", func(t *testing.T) {
		assert.Panics(t, func() { MustNew(WithEngine(nil)) })
	})
}

func TestFactory_Tag(t *testing.T) {
	t.Run("every known tag yields a builder", func(t *testing.T) {
		f, _ := newTestFactory(t)
		for _, tag := range KnownTags() {
			assert.NotNil(t, f.Tag(tag), tag)
		}
	})

	t.Run("lookup accepts any key without compiling", func(t *testing.T) {
		engine := &countingEngine{class: "x"}
		f, _ := newTestFactory(t, WithEngine(engine))

		assert.NotNil(t, f.Tag("not a tag"))
		assert.Equal(t, 0, engine.calls)
	})

	t.Run("generated accessors bind their tag", func(t *testing.T) {
		f, renderer := newTestFactory(t, WithEngine(&countingEngine{class: "c"}))

		builders := map[string]Builder{
			"div":      f.Div(),
			"span":     f.Span(),
			"html":     f.HTML(),
			"option":   f.OptionEl(),
			"template": f.TemplateEl(),
		}
		for tag, b := range builders {
			c, err := b(CSS())
			require.NoError(t, err)
			_, err = c.Render(nil)
			require.NoError(t, err)

			gotTag, _ := renderer.last()
			assert.Equal(t, tag, gotTag)
		}
	})
}

func TestBuilder(t *testing.T) {
	t.Run("compiles once per call without memoization", func(t *testing.T) {
		engine := &countingEngine{class: "css-1"}
		f, _ := newTestFactory(t, WithEngine(engine))
		b := f.Tag("div")

		c1, err := b(CSS("color: red;"))
		require.NoError(t, err)
		c2, err := b(CSS("color: red;"))
		require.NoError(t, err)

		assert.Equal(t, 2, engine.calls)
		assert.NotSame(t, c1, c2)
	})

	t.Run("class fields", func(t *testing.T) {
		f, _ := newTestFactory(t)

		c, err := f.Tag("div").CSS("color: red;")
		require.NoError(t, err)
		assert.NotEmpty(t, c.ClassName())
		assert.Equal(t, "."+c.ClassName(), c.DotClassName())
		assert.Equal(t, c.DotClassName(), c.String())
		assert.Equal(t, "div", c.Tag())
	})

	t.Run("engine error returned unchanged", func(t *testing.T) {
		cause := errors.New("engine failed")
		f, _ := newTestFactory(t, WithEngine(&countingEngine{err: cause}))

		c, err := f.Tag("div")(CSS("x"))
		assert.Nil(t, c)
		assert.Same(t, cause, err)
	})

	t.Run("nil input reaches the engine", func(t *testing.T) {
		f, _ := newTestFactory(t)

		_, err := f.Tag("div")(nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgNilInput)
	})

	t.Run("template and object helpers", func(t *testing.T) {
		f, _ := newTestFactory(t)

		tc, err := f.Tag("p").Template([]string{"color: ", ";"}, "red")
		require.NoError(t, err)
		assert.Equal(t, "css-1pvnhim", tc.ClassName())

		oc, err := f.Tag("p").Object(Declarations{"color": "red"})
		require.NoError(t, err)
		assert.Equal(t, "css-9rfate", oc.ClassName())
	})

	t.Run("Must panics on error", func(t *testing.T) {
		f, _ := newTestFactory(t, WithEngine(&countingEngine{err: errors.New("x")}))
		assert.Panics(t, func() { f.Tag("div").Must(CSS()) })
	})

	t.Run("identical input yields identical class with the default engine", func(t *testing.T) {
		f, _ := newTestFactory(t)

		a := f.Tag("div").Must(CSS("margin: 0;"))
		b := f.Tag("span").Must(CSS("margin: 0;"))
		assert.Equal(t, a.ClassName(), b.ClassName())
		assert.Equal(t, 1, f.Sheet().Len())
	})
}

func TestComponent_Render_ClassName(t *testing.T) {
	f, renderer := newTestFactory(t, WithEngine(&countingEngine{class: "css-x"}))
	c := f.Tag("div").Must(CSS())

	tests := []struct {
		name      string
		className any
		present   bool
		expected  []string
	}{
		{name: "absent", expected: []string{"css-x"}},
		{name: "nil", className: nil, present: true, expected: []string{"css-x"}},
		{name: "single string", className: "a", present: true, expected: []string{"a", "css-x"}},
		{name: "sequence", className: []string{"a", "b"}, present: true, expected: []string{"a", "b", "css-x"}},
		{name: "scalar", className: 7, present: true, expected: []string{"7", "css-x"}},
		{name: "caller supplies compiled class", className: []string{"css-x", "z"}, present: true, expected: []string{"css-x", "z", "css-x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			props := Props{}
			if tt.present {
				props[PropClassName] = tt.className
			}

			_, err := c.Render(props)
			require.NoError(t, err)

			_, got := renderer.last()
			assert.Equal(t, tt.expected, got[PropClassName])
		})
	}

	t.Run("caller props not mutated", func(t *testing.T) {
		classes := []string{"a"}
		props := Props{PropClassName: classes}

		_, err := c.Render(props)
		require.NoError(t, err)

		assert.Equal(t, []string{"a"}, props[PropClassName])
		assert.Len(t, props, 1)
	})
}

func TestComponent_Render_EndToEnd(t *testing.T) {
	f, renderer := newTestFactory(t)

	c, err := f.Div()(CSS("color: red;"))
	require.NoError(t, err)
	assert.Equal(t, "css-1pvnhim", c.ClassName())

	_, err = c.Render(Props{PropChildren: "hi"})
	require.NoError(t, err)

	tag, props := renderer.last()
	assert.Equal(t, "div", tag)
	assert.Equal(t, Props{
		PropChildren:  "hi",
		PropClassName: []string{"css-1pvnhim"},
	}, props)
}

func TestComponent_Render_Collaborators(t *testing.T) {
	t.Run("normalizer runs before rendering", func(t *testing.T) {
		f, renderer := newTestFactory(t)
		c := f.Tag("div").Must(CSS())

		_, err := c.Render(Props{PropChildren: func() any { return "lazy" }})
		require.NoError(t, err)

		_, props := renderer.last()
		assert.Equal(t, "lazy", props[PropChildren])
	})

	t.Run("normalizer error returned unchanged", func(t *testing.T) {
		cause := errors.New("bad props")
		f, _ := newTestFactory(t, WithNormalizer(ChildrenNormalizerFunc(func(Props) (Props, error) {
			return nil, cause
		})))
		c := f.Tag("div").Must(CSS())

		_, err := c.Render(nil)
		assert.Same(t, cause, err)
	})

	t.Run("renderer error returned unchanged", func(t *testing.T) {
		cause := errors.New("bad tag")
		f, err := New(WithRenderer(RendererFunc(func(string, Props) (g.Node, error) {
			return nil, cause
		})))
		require.NoError(t, err)
		c := f.Tag("div").Must(CSS())

		_, err = c.Render(nil)
		assert.Same(t, cause, err)
	})

	t.Run("unknown tag fails at render time", func(t *testing.T) {
		f, err := New()
		require.NoError(t, err)

		c, err := f.Tag("blink")(CSS("color: red;"))
		require.NoError(t, err)

		_, err = c.Render(nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgUnknownTag)
	})
}

func TestComponent_Nodes(t *testing.T) {
	f, err := New()
	require.NoError(t, err)
	card := f.Section().Must(CSS("margin: 0;"))
	title := f.H2().Must(CSS("color: red;"))

	t.Run("El", func(t *testing.T) {
		assert.Equal(t, `<section class="css-16ogups">hi</section>`, renderHTML(t, card.El("hi")))
		assert.Equal(t, `<section class="css-16ogups"></section>`, renderHTML(t, card.El()))
	})

	t.Run("nested components", func(t *testing.T) {
		html := renderHTML(t, card.El(title.El("Title"), "body"))
		assert.Equal(t, `<section class="css-16ogups"><h2 class="css-1pvnhim">Title</h2>body</section>`, html)
	})

	t.Run("With", func(t *testing.T) {
		html := renderHTML(t, card.With(Props{"id": "main", PropClassName: "wide"}, "x"))
		assert.Equal(t, `<section class="wide css-16ogups" id="main">x</section>`, html)
	})

	t.Run("Func", func(t *testing.T) {
		node, err := card.Func()(Props{PropChildren: title})
		require.NoError(t, err)
		assert.Equal(t, `<section class="css-16ogups"><h2 class="css-1pvnhim"></h2></section>`, renderHTML(t, node))
	})

	t.Run("Node surfaces render errors", func(t *testing.T) {
		bad := f.Tag("blink").Must(CSS())
		err := bad.Node(nil).Render(io.Discard)
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgUnknownTag)
	})
}

func TestDefaultFactory(t *testing.T) {
	assert.Same(t, Default(), Default())
	assert.Same(t, DefaultSheet, Default().Sheet())

	c, err := Div().CSS("color: red;")
	require.NoError(t, err)
	assert.Equal(t, "css-1pvnhim", c.ClassName())
	assert.True(t, DefaultSheet.Inserted(c.ClassName()))

	viaTag, err := Tag("div")(CSS("color: red;"))
	require.NoError(t, err)
	assert.Equal(t, c.ClassName(), viaTag.ClassName())
}

func TestFactory_ConcurrentUse(t *testing.T) {
	f, err := New()
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c, err := f.Tag("span").CSS("color: blue;")
			if !assert.NoError(t, err) {
				return
			}
			_, err = c.Render(Props{PropChildren: "x"})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, f.Sheet().Len())
}
