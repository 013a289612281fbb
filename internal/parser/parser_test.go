package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/soda3x/barista/internal/model"
)

func TestExtractEligibility(t *testing.T) {
	src := `
public class Car {
    public String owner;
    private String m_make;
    private static int instances;
    private final String vin;
    private transient double cachedPrice;
    private int m_year;
    protected boolean serviced;
    private boolean isElectric;
}
`
	scan, err := Extract(src, "")
	require.NoError(t, err)
	require.Equal(t, "Car", scan.Class.Name)
	require.Empty(t, scan.Warnings)

	require.Equal(t, []*model.Field{
		{Type: "String", Name: "m_make"},
		{Type: "int", Name: "m_year"},
		{Type: "boolean", Name: "isElectric"},
	}, scan.Class.Fields)
}

func TestExtractPrefixFilter(t *testing.T) {
	src := `
public class Car {
    private String m_make;
    private int m_year;
    private boolean isElectric;
    private String color;
}
`
	scan, err := Extract(src, "m_")
	require.NoError(t, err)
	require.Equal(t, []*model.Field{
		{Type: "String", Name: "m_make"},
		{Type: "int", Name: "m_year"},
	}, scan.Class.Fields)
}

func TestExtractDeclarationShapes(t *testing.T) {
	tests := []struct {
		name     string
		decl     string
		want     *model.Field
		wantWarn bool
	}{
		{
			name: "simple",
			decl: "private int year;",
			want: &model.Field{Type: "int", Name: "year"},
		},
		{
			name: "initializer truncated",
			decl: "private int year = 2020;",
			want: &model.Field{Type: "int", Name: "year"},
		},
		{
			name: "initializer without spaces",
			decl: "private int year=2020;",
			want: &model.Field{Type: "int", Name: "year"},
		},
		{
			name: "array suffix on type",
			decl: "private int[] scores;",
			want: &model.Field{Type: "int[]", Name: "scores"},
		},
		{
			name: "array suffix on name",
			decl: "private int scores[];",
			want: &model.Field{Type: "int[]", Name: "scores"},
		},
		{
			name: "generic type with comma",
			decl: "private Map<String, Integer> index;",
			want: &model.Field{Type: "Map<String, Integer>", Name: "index"},
		},
		{
			name: "annotated field",
			decl: "@Deprecated private String legacy;",
			want: &model.Field{Type: "String", Name: "legacy"},
		},
		{
			name: "volatile stays eligible",
			decl: "private volatile long counter;",
			want: &model.Field{Type: "long", Name: "counter"},
		},
		{
			name:     "multiple declarators flagged",
			decl:     "private int x, y;",
			wantWarn: true,
		},
		{
			name:     "unbalanced generics flagged",
			decl:     "private Map<String index;",
			wantWarn: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scan, err := Extract("class Holder {\n    "+tt.decl+"\n}\n", "")
			require.NoError(t, err)
			if tt.wantWarn {
				require.Empty(t, scan.Class.Fields)
				require.Len(t, scan.Warnings, 1)
				return
			}
			require.Empty(t, scan.Warnings)
			require.Equal(t, []*model.Field{tt.want}, scan.Class.Fields)
		})
	}
}

func TestExtractIgnoresComments(t *testing.T) {
	src := `
// private int ghost;
/* private int phantom; */
public class Car {
    /** The make of the car; never null. */
    private String m_make;
    // private int ghost2;
}
`
	scan, err := Extract(src, "")
	require.NoError(t, err)
	require.Equal(t, []*model.Field{{Type: "String", Name: "m_make"}}, scan.Class.Fields)
}

func TestExtractIgnoresMethodBodies(t *testing.T) {
	src := `
public class Car {
    private int m_year;

    public void drive() {
        int distance = 0;
        distance++;
    }

    private native void honk();
}
`
	scan, err := Extract(src, "")
	require.NoError(t, err)
	require.Equal(t, []*model.Field{{Type: "int", Name: "m_year"}}, scan.Class.Fields)
}

func TestClassNameResolution(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{name: "class", src: "public class Car {}", want: "Car"},
		{name: "interface", src: "interface Vehicle {}", want: "Vehicle"},
		{name: "enum", src: "public enum Fuel {}", want: "Fuel"},
		{name: "generic class", src: "public class Garage<T> {}", want: "Garage"},
		{name: "no space before brace", src: "class Car{ }", want: "Car"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scan, err := Extract(tt.src, "")
			require.NoError(t, err)
			require.Equal(t, tt.want, scan.Class.Name)
		})
	}
}

func TestExtractNoClassDecl(t *testing.T) {
	_, err := Extract("private int year;", "")
	require.ErrorIs(t, err, ErrNoClassDecl)
}

func TestExtractEmptyResultIsNotAnError(t *testing.T) {
	scan, err := Extract("public class Empty {\n}\n", "")
	require.NoError(t, err)
	require.Empty(t, scan.Class.Fields)
}
