package contacts

import (
	"reflect"
	"testing"
)

func TestSearchWhere_OwnershipOnly(t *testing.T) {
	where, args := searchWhere("alice", Filter{})

	if where != "username = $1" {
		t.Fatalf("unexpected where: %q", where)
	}
	if !reflect.DeepEqual(args, []any{"alice"}) {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestSearchWhere_NameChecksBothColumns(t *testing.T) {
	where, args := searchWhere("alice", Filter{Name: "john"})

	want := "username = $1 AND (first_name ILIKE $2 OR last_name ILIKE $3)"
	if where != want {
		t.Fatalf("unexpected where: %q", where)
	}
	if !reflect.DeepEqual(args, []any{"alice", "%john%", "%john%"}) {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestSearchWhere_AllFilters(t *testing.T) {
	where, args := searchWhere("alice", Filter{Name: "john", Email: "example", Phone: "555"})

	want := "username = $1 AND (first_name ILIKE $2 OR last_name ILIKE $3) AND email ILIKE $4 AND phone ILIKE $5"
	if where != want {
		t.Fatalf("unexpected where: %q", where)
	}
	if !reflect.DeepEqual(args, []any{"alice", "%john%", "%john%", "%example%", "%555%"}) {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestSearchWhere_EmailOnly(t *testing.T) {
	where, args := searchWhere("alice", Filter{Email: "example.com"})

	want := "username = $1 AND email ILIKE $2"
	if where != want {
		t.Fatalf("unexpected where: %q", where)
	}
	if !reflect.DeepEqual(args, []any{"alice", "%example.com%"}) {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestWhereBuilder_RenumbersEachMarkerOnce(t *testing.T) {
	b := &whereBuilder{}
	b.add("a = ?", 1)
	b.add("(b = ? OR c = ?)", 2, 3)

	where, args := b.build()

	if where != "a = $1 AND (b = $2 OR c = $3)" {
		t.Fatalf("unexpected where: %q", where)
	}
	if !reflect.DeepEqual(args, []any{1, 2, 3}) {
		t.Fatalf("unexpected args: %v", args)
	}
}
