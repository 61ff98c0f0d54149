package textprep

import (
	"fmt"
	"io"
	"net/http"
)

// Download fetches a page body. Any non-200 status is an error.
func Download(u string) ([]byte, error) {
	resp, err := http.Get(u)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("get %s: %s", u, resp.Status)
	}

	return io.ReadAll(resp.Body)
}
