package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/payment-system/backend/internal/domain/entity"
	domainerror "github.com/payment-system/backend/internal/domain/error"
)

// fakeUserRepo is an in-memory stand-in keyed by email.
type fakeUserRepo struct {
	byEmail map[string]*entity.User
	nextID  int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail: make(map[string]*entity.User),
		nextID:  1,
	}
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	u.ID = f.nextID
	f.nextID++
	u.RegistrationDate = time.Now().UTC()
	if u.PasswordHash == "" {
		u.PasswordHash = "default_hash"
	}
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id int64) (*entity.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) FindAll(context.Context) ([]*entity.User, error)    { return nil, nil }
func (f *fakeUserRepo) FindActive(context.Context) ([]*entity.User, error) { return nil, nil }

func (f *fakeUserRepo) Update(_ context.Context, u *entity.User) (bool, error) {
	for _, existing := range f.byEmail {
		if existing.ID == u.ID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) Delete(context.Context, int64) (bool, error)     { return false, nil }
func (f *fakeUserRepo) Deactivate(context.Context, int64) (bool, error) { return false, nil }

func (f *fakeUserRepo) SearchByLastName(context.Context, string) ([]*entity.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) Count(context.Context) (int64, error) {
	return int64(len(f.byEmail)), nil
}

// fakePasswordService marks hashes without real bcrypt work.
type fakePasswordService struct {
	calls int
}

func (f *fakePasswordService) Hash(password string) (string, error) {
	f.calls++
	return "hashed:" + password, nil
}

func TestRegisterUserUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("registers a new user with a hashed password", func(t *testing.T) {
		repo := newFakeUserRepo()
		pw := &fakePasswordService{}
		uc := NewRegisterUserUseCase(repo, pw)

		output, err := uc.Execute(ctx, RegisterUserInput{
			FirstName: "Olena",
			LastName:  "Kovalenko",
			Email:     "olena@example.com",
			Password:  "s3cret",
		})
		if err != nil {
			t.Fatalf("Execute returned error: %v", err)
		}
		if output.UserID == 0 {
			t.Error("expected an assigned user id")
		}
		if pw.calls != 1 {
			t.Errorf("expected one hash call, got %d", pw.calls)
		}
		if repo.byEmail["olena@example.com"].PasswordHash != "hashed:s3cret" {
			t.Error("expected the hashed password to be stored")
		}
	})

	t.Run("password is optional", func(t *testing.T) {
		repo := newFakeUserRepo()
		pw := &fakePasswordService{}
		uc := NewRegisterUserUseCase(repo, pw)

		_, err := uc.Execute(ctx, RegisterUserInput{
			FirstName: "Ivan",
			LastName:  "Bondar",
			Email:     "ivan@example.com",
		})
		if err != nil {
			t.Fatalf("Execute returned error: %v", err)
		}
		if pw.calls != 0 {
			t.Error("expected no hash call without a password")
		}
		if repo.byEmail["ivan@example.com"].PasswordHash != "default_hash" {
			t.Error("expected the placeholder hash")
		}
	})

	t.Run("rejects a duplicate email", func(t *testing.T) {
		repo := newFakeUserRepo()
		uc := NewRegisterUserUseCase(repo, &fakePasswordService{})

		input := RegisterUserInput{
			FirstName: "Olena",
			LastName:  "Kovalenko",
			Email:     "olena@example.com",
		}
		if _, err := uc.Execute(ctx, input); err != nil {
			t.Fatalf("first Execute returned error: %v", err)
		}

		_, err := uc.Execute(ctx, input)
		if !errors.Is(err, domainerror.ErrEmailAlreadyExists) {
			t.Errorf("expected ErrEmailAlreadyExists, got %v", err)
		}
	})

	t.Run("rejects missing names", func(t *testing.T) {
		uc := NewRegisterUserUseCase(newFakeUserRepo(), &fakePasswordService{})

		_, err := uc.Execute(ctx, RegisterUserInput{Email: "x@example.com"})
		if !errors.Is(err, domainerror.ErrMissingUserName) {
			t.Errorf("expected ErrMissingUserName, got %v", err)
		}
	})

	t.Run("rejects a missing email", func(t *testing.T) {
		uc := NewRegisterUserUseCase(newFakeUserRepo(), &fakePasswordService{})

		_, err := uc.Execute(ctx, RegisterUserInput{FirstName: "Olena", LastName: "Kovalenko"})
		if !errors.Is(err, domainerror.ErrMissingEmail) {
			t.Errorf("expected ErrMissingEmail, got %v", err)
		}
	})
}

func TestUpdateUserUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("updates mutable fields", func(t *testing.T) {
		repo := newFakeUserRepo()
		registered, err := NewRegisterUserUseCase(repo, &fakePasswordService{}).Execute(ctx, RegisterUserInput{
			FirstName: "Olena",
			LastName:  "Kovalenko",
			Email:     "olena@example.com",
		})
		if err != nil {
			t.Fatalf("register returned error: %v", err)
		}

		uc := NewUpdateUserUseCase(repo)
		output, err := uc.Execute(ctx, UpdateUserInput{
			UserID:    registered.UserID,
			FirstName: "Olha",
			LastName:  "Kovalenko",
			Email:     "olena@example.com",
			IsActive:  true,
		})
		if err != nil {
			t.Fatalf("Execute returned error: %v", err)
		}
		if output.FirstName != "Olha" {
			t.Errorf("unexpected first name %q", output.FirstName)
		}
	})

	t.Run("missing user", func(t *testing.T) {
		uc := NewUpdateUserUseCase(newFakeUserRepo())

		_, err := uc.Execute(ctx, UpdateUserInput{
			UserID:    42,
			FirstName: "No",
			LastName:  "One",
			Email:     "ghost@example.com",
		})
		if !errors.Is(err, domainerror.ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got %v", err)
		}
	})
}
