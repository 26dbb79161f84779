// Copyright (c) 2024 FlowBridge Organization
// SPDX-License-Identifier: Apache-2.0

package urlfix

import (
	"strings"
)

// FixProxyUrl normalizes a configured proxy address into a full http URL.
// Bare host:port values are accepted so that configs can stay terse.
func FixProxyUrl(url string) string {
	if url == "" {
		return url
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		url = "http://" + url
	}
	return strings.TrimSuffix(url, "/")
}
