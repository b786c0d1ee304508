package auth

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/micatius/FreelancerPaymentProcessingSystem/internal/apperror"
	"github.com/micatius/FreelancerPaymentProcessingSystem/internal/encoding"
)

// DefaultUsersPath is where the desktop application keeps its user records.
const DefaultUsersPath = "dat/txt/users.txt"

// FileStore reads and appends user records in the flat users file. One
// record per line: username;passwordHash;role;linkedEntityId. Files written
// by the legacy app may be in a Windows codepage, so reads go through
// charset detection.
type FileStore struct {
	path string
}

// NewFileStore returns a store over the users file at path.
func NewFileStore(path string) *FileStore {
	if path == "" {
		path = DefaultUsersPath
	}

	return &FileStore{path: path}
}

// FindAll loads every user record from the file.
func (s *FileStore) FindAll() ([]User, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("opening users file: %w", err)
	}
	defer f.Close()

	r, err := encoding.NewUTF8Reader(f)
	if err != nil {
		return nil, fmt.Errorf("detecting users file encoding: %w", err)
	}

	var users []User

	scanner := bufio.NewScanner(r)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		user, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("users file line %d: %w", lineNo, err)
		}

		users = append(users, user)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading users file: %w", err)
	}

	return users, nil
}

// FindByUsername returns the record for username or ErrNotFound.
func (s *FileStore) FindByUsername(username string) (User, error) {
	users, err := s.FindAll()
	if err != nil {
		return User{}, err
	}

	for _, u := range users {
		if u.Username == username {
			return u, nil
		}
	}

	return User{}, apperror.ErrNotFound
}

// Append adds one record at the end of the file, creating it on demand.
func (s *FileStore) Append(user User) error {
	line := strings.Join([]string{
		user.Username,
		user.PasswordHash,
		string(user.Role),
		strconv.FormatInt(user.LinkedEntityID, 10),
	}, ";")

	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("opening users file: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(line + "\n"); err != nil {
		return fmt.Errorf("writing user record: %w", err)
	}

	return nil
}

func parseLine(line string) (User, error) {
	parts := strings.SplitN(line, ";", 4)
	if len(parts) != 4 {
		return User{}, fmt.Errorf("expected 4 fields, got %d", len(parts))
	}

	role, err := ParseRole(parts[2])
	if err != nil {
		return User{}, err
	}

	linkedID, err := strconv.ParseInt(parts[3], 10, 64)
	if err != nil {
		return User{}, fmt.Errorf("linked entity id: %w", err)
	}

	return User{
		Username:       parts[0],
		PasswordHash:   parts[1],
		Role:           role,
		LinkedEntityID: linkedID,
	}, nil
}
