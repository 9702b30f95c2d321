package errors_test

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/arthur-debert/homefiles/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryOf(t *testing.T) {
	tests := []struct {
		code errors.ErrorCode
		want errors.Category
	}{
		{errors.ErrConfigLoad, errors.CategoryConfiguration},
		{errors.ErrConfigParse, errors.CategoryConfiguration},
		{errors.ErrConfigInvalid, errors.CategoryConfiguration},
		{errors.ErrLayoutInvalid, errors.CategoryConfiguration},
		{errors.ErrPatternInvalid, errors.CategoryConfiguration},
		{errors.ErrDirNotFound, errors.CategoryResolution},
		{errors.ErrDirAccess, errors.CategoryResolution},
		{errors.ErrNotADirectory, errors.CategoryResolution},
		{errors.ErrPackageMissing, errors.CategoryResolution},
		{errors.ErrPathOutsideDir, errors.CategoryResolution},
		{errors.ErrFileRead, errors.CategoryContent},
		{errors.ErrInternal, errors.CategoryUnknown},
		{errors.ErrUnknown, errors.CategoryUnknown},
		{errors.ErrorCode("SOMETHING_ELSE"), errors.CategoryUnknown},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, errors.CategoryOf(tt.code))
			assert.Equal(t, tt.want, errors.New(tt.code, "x").Category())
		})
	}
}

func TestCategoryPredicates(t *testing.T) {
	layoutErr := errors.Wrap(stderrors.New(`unknown layout "flat"`), errors.ErrLayoutInvalid, "invalid layout").
		WithDetail("layout", "flat")
	missingDir := errors.Wrapf(fs.ErrNotExist, errors.ErrDirNotFound, "source directory %s does not exist", "/src/home").
		WithDetail("directory", "/src/home")

	tests := []struct {
		name           string
		err            error
		wantConfig     bool
		wantResolution bool
	}{
		{"layout", layoutErr, true, false},
		{"layout_wrapped_by_cli", fmt.Errorf("failed to load configuration: %w", layoutErr), true, false},
		{"pattern", errors.New(errors.ErrPatternInvalid, "bad pattern"), true, false},
		{"missing_dir", missingDir, false, true},
		{"missing_dir_wrapped_twice", fmt.Errorf("outer: %w", fmt.Errorf("failed to resolve mappings: %w", missingDir)), false, true},
		{"package_missing", errors.New(errors.ErrPackageMissing, "no package"), false, true},
		{"content", errors.New(errors.ErrFileRead, "read failed"), false, false},
		{"internal", errors.New(errors.ErrInternal, "bug"), false, false},
		{"plain", stderrors.New("plain"), false, false},
		{"nil", nil, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantConfig, errors.IsConfigurationError(tt.err))
			assert.Equal(t, tt.wantResolution, errors.IsResolutionError(tt.err))
		})
	}
}

func TestErrorString(t *testing.T) {
	assert.Equal(t, "[PACKAGE_MISSING] file has no package",
		errors.New(errors.ErrPackageMissing, "file has no package").Error())

	assert.Equal(t, `[PATTERN_INVALID] invalid exclusion pattern "(": missing closing )`,
		errors.Wrapf(stderrors.New("missing closing )"), errors.ErrPatternInvalid, "invalid exclusion pattern %q", "(").Error())

	assert.Equal(t, "[NOT_A_DIRECTORY] source path /src/x is not a directory",
		errors.Newf(errors.ErrNotADirectory, "source path %s is not a directory", "/src/x").Error())
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, errors.Wrap(nil, errors.ErrDirAccess, "cannot read"))
	assert.Nil(t, errors.Wrapf(nil, errors.ErrDirAccess, "cannot read %s", "/src"))
}

func TestWrapKeepsCause(t *testing.T) {
	err := errors.Wrapf(fs.ErrPermission, errors.ErrDirAccess, "cannot read directory %s", "/src/home")

	assert.ErrorIs(t, err, fs.ErrPermission)
	assert.Equal(t, fs.ErrPermission, err.Unwrap())
	assert.True(t, errors.IsErrorCode(fmt.Errorf("resolve: %w", err), errors.ErrDirAccess))
}

func TestIsComparesCodes(t *testing.T) {
	a := errors.New(errors.ErrDirNotFound, "/a missing")
	b := errors.New(errors.ErrDirNotFound, "/b missing")
	c := errors.New(errors.ErrDirAccess, "/a denied")

	assert.ErrorIs(t, fmt.Errorf("wrapped: %w", a), b)
	assert.False(t, stderrors.Is(a, c))
	assert.False(t, a.Is(stderrors.New("plain")))
}

func TestDetails(t *testing.T) {
	err := errors.New(errors.ErrPatternInvalid, "invalid exclusion pattern").
		WithDetail("pattern", "(").
		WithDetail("index", 2).
		WithDetails(map[string]interface{}{"reference": "home"})

	details := errors.GetErrorDetails(fmt.Errorf("cli: %w", err))
	require.NotNil(t, details)
	assert.Equal(t, "(", details["pattern"])
	assert.Equal(t, 2, details["index"])
	assert.Equal(t, "home", details["reference"])

	assert.Nil(t, errors.GetErrorDetails(stderrors.New("plain")))

	bare := &errors.HomefilesError{Code: errors.ErrFileRead}
	bare.WithDetail("file", "/src/.bashrc")
	assert.Equal(t, "/src/.bashrc", bare.Details["file"])

	bare = &errors.HomefilesError{Code: errors.ErrFileRead}
	bare.WithDetails(map[string]interface{}{"name": "homefiles--bashrc"})
	assert.Equal(t, "homefiles--bashrc", bare.Details["name"])
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, errors.ErrPathOutsideDir, errors.GetErrorCode(
		fmt.Errorf("strip: %w", errors.New(errors.ErrPathOutsideDir, "outside"))))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("plain")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(nil))
}

func TestOutermostCodeWins(t *testing.T) {
	inner := errors.Wrap(fs.ErrNotExist, errors.ErrDirNotFound, "missing")
	outer := errors.Wrap(inner, errors.ErrConfigLoad, "failed to load config")

	assert.Equal(t, errors.ErrConfigLoad, errors.GetErrorCode(outer))
	assert.True(t, errors.IsConfigurationError(outer))
	assert.True(t, errors.IsErrorCode(outer.Unwrap(), errors.ErrDirNotFound))
	assert.ErrorIs(t, outer, fs.ErrNotExist)
}
