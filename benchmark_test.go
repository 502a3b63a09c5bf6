package keetree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var githubAPI = []string{
	"/authorizations",
	"/authorizations/:id",
	"/applications/:client_id/tokens",
	"/applications/:client_id/tokens/:access_token",
	"/events",
	"/repos/:owner/:repo/events",
	"/networks/:owner/:repo/events",
	"/orgs/:org/events",
	"/users/:user/received_events",
	"/users/:user/received_events/public",
	"/users/:user/events",
	"/users/:user/events/public",
	"/users/:user/events/orgs/:org",
	"/feeds",
	"/notifications",
	"/repos/:owner/:repo/notifications",
	"/notifications/threads/:id",
	"/notifications/threads/:id/subscription",
	"/repos/:owner/:repo/stargazers",
	"/users/:user/starred",
	"/user/starred",
	"/user/starred/:owner/:repo",
	"/repos/:owner/:repo/subscribers",
	"/users/:user/subscriptions",
	"/user/subscriptions",
	"/repos/:owner/:repo/subscription",
	"/user/subscriptions/:owner/:repo",
	"/users/:user/gists",
	"/gists",
	"/gists/:id",
	"/gists/:id/star",
	"/gists/:id/forks",
	`/repos/:owner/:repo/git/blobs/r{^[0-9a-f]{40}$}`,
	`/repos/:owner/:repo/git/commits/r{^[0-9a-f]{40}$}`,
	"/repos/:owner/:repo/git/refs/*ref",
	"/repos/:owner/:repo/git/refs",
	"/repos/:owner/:repo/git/tags/:sha",
	"/repos/:owner/:repo/git/trees/:sha",
	"/issues",
	"/user/issues",
	"/orgs/:org/issues",
	"/repos/:owner/:repo/issues",
	"/repos/:owner/:repo/issues/:number",
	"/repos/:owner/:repo/assignees",
	"/repos/:owner/:repo/assignees/:assignee",
	"/repos/:owner/:repo/issues/:number/comments",
	"/repos/:owner/:repo/labels",
	"/repos/:owner/:repo/labels/:name",
	"/search/repositories",
	"/search/code",
	"/search/issues",
	"/search/users",
	"/user",
	"/users",
	"/users/:user",
	"/user/emails",
	"/user/followers",
	"/user/following/:user",
}

func newBenchTree(b *testing.B) *Tree[string] {
	b.Helper()
	tree := MustNew[string]()
	for _, rte := range githubAPI {
		require.NoError(b, tree.Insert(rte, rte))
	}
	return tree
}

func benchLookup(b *testing.B, tree *Tree[string], paths []string) {
	segments := make([][]string, len(paths))
	for i, path := range paths {
		segments[i] = tree.Segments(path)
	}
	root := tree.Root()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		for _, path := range segments {
			if _, ok := root.At(path); !ok {
				b.Fatalf("no match for %v", path)
			}
		}
	}
}

func BenchmarkStaticLookup(b *testing.B) {
	benchLookup(b, newBenchTree(b), []string{"/user/emails", "/search/code", "/feeds"})
}

func BenchmarkParamLookup(b *testing.B) {
	benchLookup(b, newBenchTree(b), []string{"/repos/leizaf/keetree/issues/42/comments"})
}

func BenchmarkRegexpLookup(b *testing.B) {
	benchLookup(b, newBenchTree(b), []string{"/repos/leizaf/keetree/git/commits/9b2a3f1c0d4e5f60718293a4b5c6d7e8f9012345"})
}

func BenchmarkCatchAllLookup(b *testing.B) {
	benchLookup(b, newBenchTree(b), []string{"/repos/leizaf/keetree/git/refs/heads/feature/x"})
}

func BenchmarkGithubAllLookup(b *testing.B) {
	tree := newBenchTree(b)
	benchLookup(b, tree, githubAPI)
}

func BenchmarkInsert(b *testing.B) {
	segments := make([][]string, len(githubAPI))
	for i, rte := range githubAPI {
		segments[i] = parse(rte)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		root := new(Node[string])
		for _, path := range segments {
			if err := root.Insert(path, ""); err != nil {
				b.Fatal(err)
			}
		}
	}
}
