package data

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/aoideee/bookshelf-api/internal/validator"
)

func TestValidateBookInput(t *testing.T) {
	tests := []struct {
		name  string
		input BookInput
		want  string
	}{
		{"valid", BookInput{Name: "Dune", PageCount: num(10), ReadPage: num(10)}, ""},
		{"valid without counts", BookInput{Name: "Dune"}, ""},
		{"valid fractional counts", BookInput{Name: "Dune", PageCount: num(100.5), ReadPage: num(100.5)}, ""},
		{"missing name", BookInput{PageCount: num(10), ReadPage: num(1)},
			"Gagal menambahkan buku. Mohon isi nama buku"},
		{"read page too large", BookInput{Name: "Dune", PageCount: num(100), ReadPage: num(101)},
			"Gagal menambahkan buku. readPage tidak boleh lebih besar dari pageCount"},
		{"read page too large by a fraction", BookInput{Name: "Dune", PageCount: num(100), ReadPage: num(100.5)},
			"Gagal menambahkan buku. readPage tidak boleh lebih besar dari pageCount"},
		{"name checked first", BookInput{PageCount: num(1), ReadPage: num(2)},
			"Gagal menambahkan buku. Mohon isi nama buku"},
		{"read page without page count", BookInput{Name: "Dune", ReadPage: num(5)}, ""},
		{"null page count counts as zero", BookInput{Name: "Dune", ReadPage: num(5), PageCount: Null[float64]()},
			"Gagal menambahkan buku. readPage tidak boleh lebih besar dari pageCount"},
		{"null read page counts as zero", BookInput{Name: "Dune", ReadPage: Null[float64](), PageCount: num(5)}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := validator.New()
			ValidateBookInput(v, tt.input, "menambahkan")
			if got := v.First(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
			if v.Valid() != (tt.want == "") {
				t.Errorf("Valid() = %v for message %q", v.Valid(), tt.want)
			}
		})
	}
}

func TestBookInputBookAndBrief(t *testing.T) {
	in := BookInput{Name: "Dune", Publisher: Some("Chilton"), Reading: Some(true)}
	b := in.Book()
	b.ID = "abc"

	if b.Name != "Dune" || !b.Reading.Present() || !b.Reading.Value {
		t.Errorf("unexpected book: %+v", b)
	}
	s := b.Brief()
	if s.ID != "abc" || s.Name != "Dune" || s.Publisher.Value != "Chilton" {
		t.Errorf("unexpected summary: %+v", s)
	}
}

func TestBookJSONKeepsNullAndOmitsAbsent(t *testing.T) {
	var in BookInput
	body := `{"name":"Dune","year":2020.0,"publisher":null,"pageCount":100.5,"readPage":100.5}`
	if err := json.Unmarshal([]byte(body), &in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !in.Publisher.Set || !in.Publisher.Null {
		t.Errorf("expected publisher to be an explicit null, got %+v", in.Publisher)
	}
	if in.Author.Set {
		t.Errorf("expected author to be absent, got %+v", in.Author)
	}
	if in.Year.Value != 2020 || in.PageCount.Value != 100.5 {
		t.Errorf("unexpected numbers: year=%v pageCount=%v", in.Year.Value, in.PageCount.Value)
	}

	js, err := json.Marshal(in.Book().Brief())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(js), `"publisher":null`) {
		t.Errorf("expected explicit null publisher, got %s", js)
	}

	js, err = json.Marshal(in.Book())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{`"year":2020`, `"pageCount":100.5`, `"readPage":100.5`, `"publisher":null`} {
		if !strings.Contains(string(js), want) {
			t.Errorf("expected %s in %s", want, js)
		}
	}
	for _, absent := range []string{`"author"`, `"summary"`, `"reading"`} {
		if strings.Contains(string(js), absent) {
			t.Errorf("expected %s to be omitted from %s", absent, js)
		}
	}
}

func TestOptionalRejectsWrongType(t *testing.T) {
	var in BookInput
	if err := json.Unmarshal([]byte(`{"name":"Dune","pageCount":"many"}`), &in); err == nil {
		t.Fatal("expected an error for a string page count")
	}
}
