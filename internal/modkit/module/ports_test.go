package module

import (
	"strings"
	"testing"

	phttp "hourglass/internal/platform/net/http"
)

type FooPort interface{ Foo() int }

type fooImpl struct{ v int }

func (f fooImpl) Foo() int { return f.v }

type fakeModule struct {
	name  string
	ports any
}

func (m fakeModule) Name() string             { return m.name }
func (m fakeModule) Ports() any               { return m.ports }
func (m fakeModule) MountRoutes(phttp.Router) {}

func TestPortsOf(t *testing.T) {
	t.Parallel()

	type bundle struct {
		Foo FooPort
		Bar int
	}
	type hidden struct {
		foo FooPort
	}

	cases := []struct {
		name  string
		ports any
		want  int
		ok    bool
	}{
		{"nil ports", nil, 0, false},
		{"direct", FooPort(fooImpl{v: 42}), 42, true},
		{"struct field", bundle{Foo: fooImpl{v: 7}}, 7, true},
		{"pointer to struct", &bundle{Foo: fooImpl{v: 9}}, 9, true},
		{"nil pointer", (*bundle)(nil), 0, false},
		{"unexported field ignored", hidden{foo: fooImpl{v: 1}}, 0, false},
		{"not a struct", 123, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := PortsOf[FooPort](fakeModule{name: tc.name, ports: tc.ports})
			if ok != tc.ok {
				t.Fatalf("ok = %v, want %v", ok, tc.ok)
			}
			if ok && got.Foo() != tc.want {
				t.Fatalf("Foo = %d, want %d", got.Foo(), tc.want)
			}
		})
	}
}

func TestMustPortsOf_PanicsWithModuleName(t *testing.T) {
	t.Parallel()

	defer func() {
		r := recover()
		s, _ := r.(string)
		if !strings.Contains(s, "reports") {
			t.Fatalf("panic = %v", r)
		}
	}()
	_ = MustPortsOf[FooPort](fakeModule{name: "reports"})
}
