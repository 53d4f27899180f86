package piano

import "testing"

func TestLayoutWhiteWidth(t *testing.T) {
	kb := NewKeyboard()
	n := kb.WhiteCount()
	for _, width := range []int{52, 100, 1000, 1240, 1247, 1920, 3000} {
		l := NewLayout(kb)
		l.Resize(width, 250)
		if got, want := l.WhiteKeyWidth(), width/n; got != want {
			t.Errorf("width %d: white key width = %d, want %d", width, got, want)
		}
		right := 0
		for _, k := range kb {
			r := l.Rect(k)
			if r.Max.X > right {
				right = r.Max.X
			}
			if !k.Black && r.Dx() != width/n {
				t.Errorf("width %d: %s is %dpx wide", width, k, r.Dx())
			}
		}
		if right > width {
			t.Errorf("width %d: keys occupy %dpx", width, right)
		}
	}
}

func TestLayoutNonDegenerate(t *testing.T) {
	kb := NewKeyboard()
	l := NewLayout(kb)
	l.Resize(1240, 250)
	for _, k := range kb {
		if l.Rect(k).Empty() {
			t.Errorf("%s has an empty rectangle", k)
		}
	}
}

func TestLayoutBlackKeys(t *testing.T) {
	kb := NewKeyboard()
	l := NewLayout(kb)
	l.Resize(1040, 200) // 20px white keys

	cs := l.Rect(kb.Key(61))
	c := l.Rect(kb.Key(60))
	d := l.Rect(kb.Key(62))
	if cs.Dx() != 12 || cs.Dy() != int(200*0.9*0.6) {
		t.Errorf("C#4 size = %dx%d", cs.Dx(), cs.Dy())
	}
	if c.Dy() != 180 {
		t.Errorf("C4 height = %d, want 180", c.Dy())
	}
	boundary := c.Max.X
	if boundary != d.Min.X {
		t.Fatalf("C4 and D4 not adjacent: %v %v", c, d)
	}
	if mid := (cs.Min.X + cs.Max.X) / 2; mid != boundary {
		t.Errorf("C#4 centered at %d, want %d", mid, boundary)
	}
}

func TestLayoutKeyAt(t *testing.T) {
	kb := NewKeyboard()
	l := NewLayout(kb)
	l.Resize(1040, 200)

	c := l.Rect(kb.Key(60))
	cs := l.Rect(kb.Key(61))

	tests := []struct {
		name string
		x, y int
		want *Key
	}{
		{"white lower half", c.Min.X + 2, c.Max.Y - 5, kb.Key(60)},
		{"black over white", cs.Min.X + 1, cs.Min.Y + 1, kb.Key(61)},
		{"white next to black", c.Min.X + 1, 1, kb.Key(60)},
		{"first key", 0, 0, kb.Key(21)},
		{"below keys", c.Min.X + 2, 195, nil},
		{"right of keys", 1045, 10, nil},
		{"negative", -1, 10, nil},
	}
	for _, tt := range tests {
		if got := l.KeyAt(tt.x, tt.y); got != tt.want {
			t.Errorf("%s: KeyAt(%d, %d) = %v, want %v", tt.name, tt.x, tt.y, got, tt.want)
		}
	}
}

func TestLayoutEmpty(t *testing.T) {
	kb := NewKeyboard()
	l := NewLayout(kb)
	l.Resize(1240, 250)
	l.Resize(0, 250)
	if k := l.KeyAt(0, 0); k != nil {
		t.Errorf("KeyAt on empty layout = %s", k)
	}
	if l.WhiteKeyWidth() != 0 {
		t.Errorf("white key width = %d", l.WhiteKeyWidth())
	}
}
