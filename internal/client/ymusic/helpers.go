package ymusic

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
)

// fetchJSONWithQuery fetches the JSON envelope from the specified API URI with the specified query.
// An envelope with an error or without a result is reported as *RequestError.
//
//nolint:revive // Go doesn't allow struct methods to be generic.
func fetchJSONWithQuery[T any](
	c *ClientImpl,
	ctx context.Context,
	op string,
	uri string,
	query url.Values,
) (*FetchJSONResult[Response[T]], error) {
	route, err := url.JoinPath(c.baseURL, uri)
	if err != nil {
		return nil, &RequestError{Op: op, URL: uri, Err: err}
	}

	if len(query) > 0 {
		route += "?" + query.Encode()
	}

	result, err := fetchJSON[Response[T]](c, ctx, op, route)
	if err != nil {
		return result, err
	}

	if result.Data.Error != nil {
		return result, &RequestError{
			Op:         op,
			URL:        route,
			StatusCode: result.StatusCode,
			Err:        fmt.Errorf("%w: %s: %s", ErrAPIError, result.Data.Error.Name, result.Data.Error.Message),
		}
	}

	if result.Data.Result == nil {
		return result, &RequestError{
			Op:         op,
			URL:        route,
			StatusCode: result.StatusCode,
			Err:        ErrEmptyResult,
		}
	}

	return result, nil
}

// fetchJSON fetches and decodes JSON from an absolute URL.
//
//nolint:revive // Go doesn't allow struct methods to be generic.
func fetchJSON[T any](c *ClientImpl, ctx context.Context, op, route string) (*FetchJSONResult[T], error) {
	response, err := c.get(ctx, op, route)
	if err != nil {
		return nil, err
	}

	defer response.Body.Close()

	var result T
	if err = json.NewDecoder(response.Body).Decode(&result); err != nil {
		return &FetchJSONResult[T]{
				Data:       nil,
				StatusCode: response.StatusCode,
			}, &RequestError{
				Op:         op,
				URL:        route,
				StatusCode: response.StatusCode,
				Err:        fmt.Errorf("failed to decode response: %w", err),
			}
	}

	return &FetchJSONResult[T]{
		Data:       &result,
		StatusCode: response.StatusCode,
	}, nil
}

// fetchStorageDescriptor fetches the storage descriptor document from an absolute URL.
// The service answers with XML; a JSON body is accepted when the content type says so.
func (c *ClientImpl) fetchStorageDescriptor(ctx context.Context, op, route string) (*StorageDescriptor, error) {
	response, err := c.get(ctx, op, route)
	if err != nil {
		return nil, err
	}

	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, &RequestError{
			Op:         op,
			URL:        route,
			StatusCode: response.StatusCode,
			Err:        fmt.Errorf("failed to read response: %w", err),
		}
	}

	var descriptor StorageDescriptor

	mediaType, _, _ := mime.ParseMediaType(response.Header.Get(contentTypeHeader))
	if mediaType == "application/json" {
		err = json.Unmarshal(body, &descriptor)
	} else {
		err = xml.Unmarshal(body, &descriptor)
	}

	if err != nil {
		return nil, &RequestError{
			Op:         op,
			URL:        route,
			StatusCode: response.StatusCode,
			Err:        fmt.Errorf("failed to decode response: %w", err),
		}
	}

	if descriptor.Host == "" || descriptor.Path == "" {
		return nil, &RequestError{
			Op:         op,
			URL:        route,
			StatusCode: response.StatusCode,
			Err:        fmt.Errorf("%w: host and path are required", ErrInvalidStorageDescriptor),
		}
	}

	return &descriptor, nil
}

// get issues an authenticated GET and checks the status code.
// On success the caller owns the response body.
func (c *ClientImpl) get(ctx context.Context, op, route string) (*http.Response, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, route, http.NoBody)
	if err != nil {
		return nil, &RequestError{Op: op, URL: route, Err: err}
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, &RequestError{Op: op, URL: route, Err: err}
	}

	if response.StatusCode != http.StatusOK {
		response.Body.Close() //nolint:gosec // Error on close is not critical here.

		return nil, &RequestError{
			Op:         op,
			URL:        route,
			StatusCode: response.StatusCode,
			Err:        ErrUnexpectedHTTPStatus,
		}
	}

	return response, nil
}
