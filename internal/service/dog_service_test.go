package service

import (
	"context"
	"strings"
	"testing"

	"github.com/spec-kit/grooming-service/internal/domain"
	apperrors "github.com/spec-kit/grooming-service/pkg/util"
)

func validDogInput() DogInput {
	return DogInput{Name: "Rex", Breed: "Beagle", Age: 4, Length: 0.6, Gender: domain.GenderMale}
}

func TestDogInputValidation(t *testing.T) {
	svc := NewDogService(newFakeDogRepo())
	ctx := context.Background()

	cases := map[string]func(*DogInput){
		"empty name":   func(in *DogInput) { in.Name = "" },
		"empty breed":  func(in *DogInput) { in.Breed = "" },
		"negative age": func(in *DogInput) { in.Age = -1 },
		"age too high": func(in *DogInput) { in.Age = 31 },
		"length high":  func(in *DogInput) { in.Length = 10.5 },
		"bad gender":   func(in *DogInput) { in.Gender = "OTHER" },
		"comment long": func(in *DogInput) { in.Comment = strings.Repeat("x", commentMaxLen+1) },
	}
	for name, mutate := range cases {
		input := validDogInput()
		mutate(&input)
		if _, err := svc.Add(ctx, "owner", input); err == nil {
			t.Errorf("%s: accepted, want validation error", name)
		}
	}
}

func TestDogAddAndEdit(t *testing.T) {
	repo := newFakeDogRepo()
	svc := NewDogService(repo)
	ctx := context.Background()

	dog, err := svc.Add(ctx, "owner-1", validDogInput())
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if dog.ID == "" || dog.OwnerID != "owner-1" {
		t.Errorf("dog = %+v", dog)
	}

	input := validDogInput()
	input.Name = "Rexy"
	input.Age = 5
	updated, err := svc.Edit(ctx, "owner-1", "Rex", input)
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	if updated.Name != "Rexy" || updated.Age != 5 {
		t.Errorf("updated = %+v", updated)
	}

	// Lookup is scoped to the owner; another user cannot reach this dog.
	if _, err := svc.Edit(ctx, "owner-2", "Rexy", input); !apperrors.IsNotFound(err) {
		t.Errorf("foreign edit err = %v, want NOT_FOUND", err)
	}
	if _, err := svc.GetForEdit(ctx, "owner-2", "Rexy"); !apperrors.IsNotFound(err) {
		t.Errorf("foreign get err = %v, want NOT_FOUND", err)
	}
}
