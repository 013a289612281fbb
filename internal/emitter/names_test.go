package emitter

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/soda3x/barista/internal/model"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name  string
		field *model.Field
		cfg   Config
		want  Names
	}{
		{
			name:  "plain reference field",
			field: &model.Field{Type: "String", Name: "color"},
			cfg:   Config{BoolStyle: "is"},
			want:  Names{Plain: "color", Pascal: "Color", Getter: "getColor", Setter: "setColor"},
		},
		{
			name:  "prefix stripped",
			field: &model.Field{Type: "String", Name: "m_make"},
			cfg:   Config{Prefix: "m_", BoolStyle: "is"},
			want:  Names{Plain: "make", Pascal: "Make", Getter: "getMake", Setter: "setMake"},
		},
		{
			name:  "boolean default style",
			field: &model.Field{Type: "boolean", Name: "active"},
			cfg:   Config{BoolStyle: "is"},
			want:  Names{Plain: "active", Pascal: "Active", Getter: "isActive", Setter: "setActive"},
		},
		{
			name:  "boolean get style",
			field: &model.Field{Type: "boolean", Name: "active"},
			cfg:   Config{BoolStyle: "get"},
			want:  Names{Plain: "active", Pascal: "Active", Getter: "getActive", Setter: "setActive"},
		},
		{
			name:  "boolean already named like a getter",
			field: &model.Field{Type: "boolean", Name: "isReady"},
			cfg:   Config{BoolStyle: "is"},
			want:  Names{Plain: "isReady", Pascal: "Ready", Getter: "isReady", Setter: "setIsReady"},
		},
		{
			name:  "boolean getter name kept verbatim even under get style",
			field: &model.Field{Type: "boolean", Name: "isReady"},
			cfg:   Config{BoolStyle: "get"},
			want:  Names{Plain: "isReady", Pascal: "Ready", Getter: "isReady", Setter: "setIsReady"},
		},
		{
			name:  "prefixed boolean strips is on the getter side only",
			field: &model.Field{Type: "boolean", Name: "m_isElectric"},
			cfg:   Config{Prefix: "m_", BoolStyle: "is"},
			want:  Names{Plain: "isElectric", Pascal: "Electric", Getter: "isElectric", Setter: "setIsElectric"},
		},
		{
			name:  "prefixed boolean under get style",
			field: &model.Field{Type: "boolean", Name: "m_isElectric"},
			cfg:   Config{Prefix: "m_", BoolStyle: "get"},
			want:  Names{Plain: "isElectric", Pascal: "Electric", Getter: "getElectric", Setter: "setIsElectric"},
		},
		{
			name:  "is prefix on a non-boolean is not special",
			field: &model.Field{Type: "String", Name: "isoCode"},
			cfg:   Config{BoolStyle: "is"},
			want:  Names{Plain: "isoCode", Pascal: "IsoCode", Getter: "getIsoCode", Setter: "setIsoCode"},
		},
		{
			name:  "is followed by lowercase is not a getter name",
			field: &model.Field{Type: "boolean", Name: "island"},
			cfg:   Config{BoolStyle: "is"},
			want:  Names{Plain: "island", Pascal: "Island", Getter: "isIsland", Setter: "setIsland"},
		},
		{
			name:  "reference field named like a getter",
			field: &model.Field{Type: "String", Name: "isReady"},
			cfg:   Config{BoolStyle: "is"},
			want:  Names{Plain: "isReady", Pascal: "IsReady", Getter: "getIsReady", Setter: "setIsReady"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Resolve(tt.field, tt.cfg))
		})
	}
}
