package menu

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		filename string
		expected SourceFile
	}{
		{"10-1 Chat.html", SourceFile{Filename: "10-1 Chat.html", Depths: []string{"10", "1"}, ID: "10-1", Name: "Chat"}},
		{"1 Home.html", SourceFile{Filename: "1 Home.html", Depths: []string{"1"}, ID: "1", Name: "Home"}},
		{"1-1-1 Login.html", SourceFile{Filename: "1-1-1 Login.html", Depths: []string{"1", "1", "1"}, ID: "1-1-1", Name: "Login"}},
		{"2-3-4-5 Order_History.html", SourceFile{Filename: "2-3-4-5 Order_History.html", Depths: []string{"2", "3", "4", "5"}, ID: "2-3-4-5", Name: "Order History"}},
		{"3-0 Zero.html", SourceFile{Filename: "3-0 Zero.html", Depths: []string{"3", "0"}, ID: "3-0", Name: "Zero"}},
		{"01-02   My_Page_Name.html", SourceFile{Filename: "01-02   My_Page_Name.html", Depths: []string{"01", "02"}, ID: "01-02", Name: "My Page Name"}},
		{"index.html", SourceFile{Filename: "index.html", ID: "index.html", Name: "index"}},
		{"00-sitemap.html", SourceFile{Filename: "00-sitemap.html", ID: "00-sitemap.html", Name: "00-sitemap"}},
		{"1-1-1-1-1 Deep.html", SourceFile{Filename: "1-1-1-1-1 Deep.html", ID: "1-1-1-1-1 Deep.html", Name: "1-1-1-1-1 Deep"}},
		{"1-1 Home.htm", SourceFile{Filename: "1-1 Home.htm", ID: "1-1 Home.htm", Name: "1-1 Home.htm"}},
		{"", SourceFile{}},
	}

	for _, test := range tests {
		file := Parse(test.filename)

		if !reflect.DeepEqual(file, test.expected) {
			t.Errorf("Incorrect parse for '%v'\n   expected: %#v\n   got:      %#v", test.filename, test.expected, file)
		}
	}
}

func TestDepth(t *testing.T) {
	file := Parse("10-1 Chat.html")

	if d, ok := file.Depth(1); !ok || d != "10" {
		t.Errorf("Incorrect depth 1 - expected:%v, got:%v (%v)", "10", d, ok)
	}

	if d, ok := file.Depth(2); !ok || d != "1" {
		t.Errorf("Incorrect depth 2 - expected:%v, got:%v (%v)", "1", d, ok)
	}

	for _, n := range []int{0, 3, 4, 5} {
		if d, ok := file.Depth(n); ok {
			t.Errorf("Expected depth %v to be absent, got %v", n, d)
		}
	}

	if !file.Matched() {
		t.Errorf("Expected '%v' to match the numbering convention", file.Filename)
	}
}

func TestDepthWithUnnumberedFile(t *testing.T) {
	file := Parse("index.html")

	if file.Matched() {
		t.Errorf("Expected '%v' not to match the numbering convention", file.Filename)
	}

	for n := 1; n <= 4; n++ {
		if d, ok := file.Depth(n); ok {
			t.Errorf("Expected depth %v to be absent, got %v", n, d)
		}
	}
}
