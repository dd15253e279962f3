/*
File    : go-giulio/std/io.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package std

import (
	"os"

	giuerrors "github.com/akashmaji946/go-giulio/errors"
	"github.com/akashmaji946/go-giulio/objects"
)

// std::io module natives. Every file operation has a synchronous form and,
// for the mutating/reading ones, an _async variant that returns a Future.
// The async variants are registered with the Async flag; the evaluator
// spawns them onto the worker pool.

// ioReadFileFn implements read_file(path): the file's contents as a string.
func ioReadFileFn(args []objects.GiulioObject) (objects.GiulioObject, *giuerrors.RuntimeError) {
	path, ok := args[0].(*objects.String)
	if !ok {
		return nil, giuerrors.NewTypeMismatch("string", objects.TypeName(args[0]))
	}
	text, err := os.ReadFile(path.Value)
	if err != nil {
		return nil, giuerrors.NewInvalidOperation("Could not read from file: %v", err)
	}
	return &objects.String{Value: string(text)}, nil
}

// ioWriteFileFn implements write_file(path, contents): truncating write.
func ioWriteFileFn(args []objects.GiulioObject) (objects.GiulioObject, *giuerrors.RuntimeError) {
	path, ok := args[0].(*objects.String)
	if !ok {
		return nil, giuerrors.NewTypeMismatch("string", objects.TypeName(args[0]))
	}
	contents, ok := args[1].(*objects.String)
	if !ok {
		return nil, giuerrors.NewTypeMismatch("string", objects.TypeName(args[1]))
	}
	if err := os.WriteFile(path.Value, []byte(contents.Value), 0o644); err != nil {
		return nil, giuerrors.NewInvalidOperation("Could not write to file: %v", err)
	}
	return objects.NULL, nil
}

// ioAppendFileFn implements append_file(path, contents).
func ioAppendFileFn(args []objects.GiulioObject) (objects.GiulioObject, *giuerrors.RuntimeError) {
	path, ok := args[0].(*objects.String)
	if !ok {
		return nil, giuerrors.NewTypeMismatch("string", objects.TypeName(args[0]))
	}
	contents, ok := args[1].(*objects.String)
	if !ok {
		return nil, giuerrors.NewTypeMismatch("string", objects.TypeName(args[1]))
	}
	f, err := os.OpenFile(path.Value, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, giuerrors.NewInvalidOperation("Could not append to file: %v", err)
	}
	defer f.Close()
	if _, err := f.WriteString(contents.Value); err != nil {
		return nil, giuerrors.NewInvalidOperation("Could not append to file: %v", err)
	}
	return objects.NULL, nil
}

// ioDeleteFileFn implements delete_file(path).
func ioDeleteFileFn(args []objects.GiulioObject) (objects.GiulioObject, *giuerrors.RuntimeError) {
	path, ok := args[0].(*objects.String)
	if !ok {
		return nil, giuerrors.NewTypeMismatch("string", objects.TypeName(args[0]))
	}
	if err := os.Remove(path.Value); err != nil {
		return nil, giuerrors.NewInvalidOperation("Could not delete file: %v", err)
	}
	return objects.NULL, nil
}

// ioCreateDirFn implements create_dir(path), creating parents as needed.
func ioCreateDirFn(args []objects.GiulioObject) (objects.GiulioObject, *giuerrors.RuntimeError) {
	path, ok := args[0].(*objects.String)
	if !ok {
		return nil, giuerrors.NewTypeMismatch("string", objects.TypeName(args[0]))
	}
	if err := os.MkdirAll(path.Value, 0o755); err != nil {
		return nil, giuerrors.NewInvalidOperation("Could not create directory: %v", err)
	}
	return objects.NULL, nil
}

// ioExistsFn implements exists(path).
func ioExistsFn(args []objects.GiulioObject) (objects.GiulioObject, *giuerrors.RuntimeError) {
	path, ok := args[0].(*objects.String)
	if !ok {
		return nil, giuerrors.NewTypeMismatch("string", objects.TypeName(args[0]))
	}
	_, err := os.Stat(path.Value)
	return objects.NativeBoolean(err == nil), nil
}
