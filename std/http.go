/*
File    : go-giulio/std/http.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package std

import (
	"io"
	"net/http"
	"strings"
	"time"

	giuerrors "github.com/akashmaji946/go-giulio/errors"
	"github.com/akashmaji946/go-giulio/objects"
)

// std::http module natives. All four verbs are async: they are registered
// with the Async flag and resolve to the response body as a string. A
// non-2xx status is not an error; the body is returned either way, the way
// a scripting language wants it.

// httpClient is shared across requests. The timeout bounds a hung server;
// there is no per-call cancellation in the language.
var httpClient = &http.Client{Timeout: 30 * time.Second}

// httpGetFn implements get(url).
func httpGetFn(args []objects.GiulioObject) (objects.GiulioObject, *giuerrors.RuntimeError) {
	return httpRequest(http.MethodGet, args, false)
}

// httpPostFn implements post(url, body).
func httpPostFn(args []objects.GiulioObject) (objects.GiulioObject, *giuerrors.RuntimeError) {
	return httpRequest(http.MethodPost, args, true)
}

// httpPutFn implements put(url, body).
func httpPutFn(args []objects.GiulioObject) (objects.GiulioObject, *giuerrors.RuntimeError) {
	return httpRequest(http.MethodPut, args, true)
}

// httpDeleteFn implements delete(url).
func httpDeleteFn(args []objects.GiulioObject) (objects.GiulioObject, *giuerrors.RuntimeError) {
	return httpRequest(http.MethodDelete, args, false)
}

// httpRequest performs one HTTP round trip and returns the response body.
func httpRequest(method string, args []objects.GiulioObject, hasBody bool) (objects.GiulioObject, *giuerrors.RuntimeError) {
	url, ok := args[0].(*objects.String)
	if !ok {
		return nil, giuerrors.NewTypeMismatch("string", objects.TypeName(args[0]))
	}

	var bodyReader io.Reader
	if hasBody {
		body, ok := args[1].(*objects.String)
		if !ok {
			return nil, giuerrors.NewTypeMismatch("string", objects.TypeName(args[1]))
		}
		bodyReader = strings.NewReader(body.Value)
	}

	req, err := http.NewRequest(method, url.Value, bodyReader)
	if err != nil {
		return nil, giuerrors.NewInvalidOperation("invalid HTTP request: %v", err)
	}
	if hasBody {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, giuerrors.NewInvalidOperation("HTTP %s failed: %v", method, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, giuerrors.NewInvalidOperation("could not read HTTP response: %v", err)
	}
	return &objects.String{Value: string(data)}, nil
}
