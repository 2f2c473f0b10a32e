package colors

import (
	"testing"

	"github.com/solarlune/softras"
)

func TestByName(t *testing.T) {

	tests := []struct {
		name string
		want softras.Color
	}{
		{"white", White()},
		{"black", Black()},
		{"gray", Gray()},
		{"grey", Gray()},
		{"lightgray", LightGray()},
		{"darkgrey", DarkGray()},
		{"red", Red()},
		{"orange", Orange()},
		{"yellow", Yellow()},
		{"green", Green()},
		{"skyblue", SkyBlue()},
		{"blue", Blue()},
		{"purple", Purple()},
	}

	for _, test := range tests {
		got, ok := ByName(test.name)
		if !ok || got != test.want {
			t.Errorf("ByName(%q) = %v, %v; want %v", test.name, got, ok, test.want)
		}
	}

	if got, ok := ByName("chartreuse"); ok || got != Black() {
		t.Error("unknown color name gave", got, ok)
	}

}

func TestNamedColors(t *testing.T) {

	if White().ToRGBA() != (softras.NewColor(1, 1, 1).ToRGBA()) || Black() != (softras.Color{}) {
		t.Fatal("white or black is off")
	}

	if Red().Bytes() != softras.NewUVector3(255, 0, 0) || Blue().Bytes() != softras.NewUVector3(0, 0, 255) {
		t.Fatal("red or blue is off")
	}

	// Grays must really be gray, with lightgray brighter than darkgray
	for _, c := range []softras.Color{Gray(), LightGray(), DarkGray()} {
		if c.R != c.G || c.G != c.B {
			t.Fatal("gray isn't gray:", c)
		}
	}

	if LightGray().R <= Gray().R || Gray().R <= DarkGray().R {
		t.Fatal("grays are out of order")
	}

}
