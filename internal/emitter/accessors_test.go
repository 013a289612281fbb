package emitter

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/soda3x/barista/internal/model"
)

var carClass = &model.Class{
	Name: "Car",
	Fields: []*model.Field{
		{Type: "String", Name: "m_make"},
		{Type: "int", Name: "m_year"},
	},
}

var carConfig = Config{Prefix: "m_", BoolStyle: "is", HashMultiplier: 31}

func TestGetters(t *testing.T) {
	want := `    /**
     * Gets the value of m_make.
     *
     * @return the value of m_make
     */
    public String getMake() {
        return m_make;
    }

    /**
     * Gets the value of m_year.
     *
     * @return the value of m_year
     */
    public int getYear() {
        return m_year;
    }

`
	got := Getters(carClass, carConfig)
	require.Empty(t, cmp.Diff(want, got))
}

func TestSetters(t *testing.T) {
	want := `    /**
     * Sets the value of m_make.
     *
     * @param make the new value
     */
    public void setMake(String make) {
        this.m_make = make;
    }

    /**
     * Sets the value of m_year.
     *
     * @param year the new value
     */
    public void setYear(int year) {
        this.m_year = year;
    }

`
	got := Setters(carClass, carConfig)
	require.Empty(t, cmp.Diff(want, got))
}

func TestSetterKeepsLeadingIs(t *testing.T) {
	c := &model.Class{
		Name:   "Car",
		Fields: []*model.Field{{Type: "boolean", Name: "m_isElectric"}},
	}
	got := Setters(c, carConfig)
	require.Contains(t, got, "public void setIsElectric(boolean isElectric)")
	require.Contains(t, got, "this.m_isElectric = isElectric;")
}

func TestAdders(t *testing.T) {
	c := &model.Class{
		Name: "Car",
		Fields: []*model.Field{
			{Type: "String", Name: "m_make"},
			{Type: "int[]", Name: "scores"},
		},
	}
	got := Adders(c, Config{BoolStyle: "is", HashMultiplier: 31})
	require.Contains(t, got, "public void addScore(int score)")
	require.Contains(t, got, "this.scores = new int[1];")
	require.Contains(t, got, "this.scores = java.util.Arrays.copyOf(this.scores, this.scores.length + 1);")
	require.Contains(t, got, "this.scores[this.scores.length - 1] = score;")
	// Non-array fields get no adder.
	require.NotContains(t, got, "m_make")
}
