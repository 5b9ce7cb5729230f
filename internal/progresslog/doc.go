// Copyright (c) 2020-2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package progresslog provides periodic logging for long running generation.

## Feature Overview

- Maintains cumulative totals about generated output between each logging
  interval
  - Total number of values
  - Total number of bytes written
- Logs all cumulative data every 10 seconds
- Immediately logs any outstanding data when flushed
*/
package progresslog
