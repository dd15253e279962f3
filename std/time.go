/*
File    : go-giulio/std/time.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package std

import (
	"time"

	giuerrors "github.com/akashmaji946/go-giulio/errors"
	"github.com/akashmaji946/go-giulio/objects"
)

// std::time module natives. sleep is async: it returns a Future and is a
// suspension point for the calling task.

// timeNowFn implements now(): seconds since the Unix epoch.
func timeNowFn(args []objects.GiulioObject) (objects.GiulioObject, *giuerrors.RuntimeError) {
	return &objects.Integer{Value: time.Now().Unix()}, nil
}

// timeNowMillisFn implements now_millis(): milliseconds since the Unix
// epoch.
func timeNowMillisFn(args []objects.GiulioObject) (objects.GiulioObject, *giuerrors.RuntimeError) {
	return &objects.Integer{Value: time.Now().UnixMilli()}, nil
}

// timeFormatFn implements format(ts): an RFC 3339 rendering of a Unix
// timestamp in seconds.
func timeFormatFn(args []objects.GiulioObject) (objects.GiulioObject, *giuerrors.RuntimeError) {
	ts, err := objects.ToInt64(args[0])
	if err != nil {
		return nil, err
	}
	return &objects.String{Value: time.Unix(ts, 0).UTC().Format(time.RFC3339)}, nil
}

// timeSleepFn implements sleep(secs): suspends the task for the given
// number of seconds (integer or float) and resolves to null.
func timeSleepFn(args []objects.GiulioObject) (objects.GiulioObject, *giuerrors.RuntimeError) {
	secs, err := objects.ToFloat(args[0])
	if err != nil {
		return nil, err
	}
	if secs < 0 {
		return nil, giuerrors.NewInvalidArguments("sleep() expects a non-negative duration")
	}
	time.Sleep(time.Duration(secs * float64(time.Second)))
	return objects.NULL, nil
}
