// Copyright (c) 2026 Creata. All rights reserved.

/*
Package client provides session-scoped state stores for embedding Creata
in a host application.

Each store caches the results of backend calls in named collections and
tracks a loading flag and the last error, so a UI loop can render
directly from store snapshots. Stores are safe for concurrent use.

Two correctness rules shape the works store:

  - Fetches are generation-stamped per collection. When overlapping
    requests race, only the most recently issued one may populate the
    collection; earlier responses are discarded on arrival.
  - Like toggles are optimistic. The flip is applied to every cached
    copy immediately, and a failed backend call is compensated with the
    exact inverse update, so the cache never silently diverges.
*/
package client
