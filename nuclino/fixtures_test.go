package nuclino

import (
	"testing"

	"github.com/google/uuid"
)

// Sample responses from the Nuclino API documentation.

const userJSON = `{
  "status": "success",
  "data": {
    "object": "user",
    "id": "9bff403a-6e0a-4f17-beac-c4333bd719b4",
    "firstName": "Thomas",
    "lastName": "Anderson",
    "email": "thomas@nuclino.com",
    "avatarUrl": "https://files.nuclino.com/avatars/9bff403a-6e0a-4f1..."
  }
}`

const workspaceJSON = `{
  "status": "success",
  "data": {
    "object": "workspace",
    "id": "127a8c4a-b3c6-4a42-8fef-b6c521e6c8cf",
    "teamId": "020f9737-7b21-442b-85eb-bd420e5593b2",
    "name": "General",
    "createdAt": "2021-12-15T15:54:23.598Z",
    "createdUserId": "2e96f3bb-c742-4164-af2c-151ab2fd346b",
    "fields": [
      {
        "object": "field",
        "id": "1504df6f-5704-43e9-9af9-79ed801828d8",
        "type": "date",
        "name": "My date field"
      }
    ],
    "childIds": ["aaf6d580-565d-497b-9ff3-b32075de3f4c"]
  }
}`

const workspaceListJSON = `{
  "status": "success",
  "data": {
    "object": "list",
    "results": [
      {
        "object": "workspace",
        "id": "127a8c4a-b3c6-4a42-8fef-b6c521e6c8cf",
        "teamId": "020f9737-7b21-442b-85eb-bd420e5593b2",
        "name": "General",
        "createdAt": "2021-12-15T15:54:23.598Z",
        "createdUserId": "2e96f3bb-c742-4164-af2c-151ab2fd346b",
        "fields": [
          {
            "object": "field",
            "id": "1504df6f-5704-43e9-9af9-79ed801828d8",
            "type": "date",
            "name": "My date field"
          }
        ],
        "childIds": ["aaf6d580-565d-497b-9ff3-b32075de3f4c"]
      },
      {
        "object": "workspace",
        "id": "66be346f-44e2-49da-888b-a2e381d4d92a",
        "teamId": "020f9737-7b21-442b-85eb-bd420e5593b2",
        "name": "Sprint planning",
        "createdAt": "2021-12-15T15:54:05.085Z",
        "createdUserId": "2e96f3bb-c742-4164-af2c-151ab2fd346b",
        "fields": [],
        "childIds": []
      }
    ]
  }
}`

const teamJSON = `{
  "status": "success",
  "data": {
    "object": "team",
    "id": "020f9737-7b21-442b-85eb-bd420e5593b2",
    "url": "https://app.nuclino.com/Team-One",
    "name": "Team One",
    "createdAt": "2021-10-21T09:34:47.885Z",
    "createdUserId": "2e96f3bb-c742-4164-af2c-151ab2fd346b"
  }
}`

const teamListJSON = `{
  "status": "success",
  "data": {
    "object": "list",
    "results": [
      {
        "object": "team",
        "id": "020f9737-7b21-442b-85eb-bd420e5593b2",
        "url": "https://app.nuclino.com/Team-One",
        "name": "Team One",
        "createdAt": "2021-10-21T09:34:47.885Z",
        "createdUserId": "2e96f3bb-c742-4164-af2c-151ab2fd346b"
      },
      {
        "object": "team",
        "id": "2e5474ad-c433-4a02-9bde-5455a12d025f",
        "url": "https://app.nuclino.com/Team-Two",
        "name": "Team Two",
        "createdAt": "2021-11-29T14:21:30.052Z",
        "createdUserId": "2e96f3bb-c742-4164-af2c-151ab2fd346b"
      }
    ]
  }
}`

const fileJSON = `{
  "status": "success",
  "data": {
    "object": "file",
    "id": "eec0a152-b1e9-43fd-bef8-987f95c85c6e",
    "itemId": "dd9a69db-048d-4644-8738-36bee31bbee0",
    "fileName": "screenshot.png",
    "createdAt": "2021-12-15T07:58:11.196Z",
    "createdUserId": "2e96f3bb-c742-4164-af2c-151ab2fd346b",
    "download": {
      "url": "https://nuclino-files.s3.eu-central-1.amazonaws.com/a122ab11...",
      "expiresAt": "2021-12-15T08:08:49.931Z"
    }
  }
}`

const itemListJSON = `{
  "status": "success",
  "data": {
    "object": "list",
    "results": [
      {
        "object": "item",
        "id": "aaf6d580-565d-497b-9ff3-b32075de3f4c",
        "workspaceId": "127a8c4a-b3c6-4a42-8fef-b6c521e6c8cf",
        "url": "https://app.nuclino.com/t/b/aaf6d580-565d-497b-9ff3-b32075de3f4c",
        "title": "My Item",
        "createdAt": "2021-12-15T15:55:19.527Z",
        "createdUserId": "2e96f3bb-c742-4164-af2c-151ab2fd346b",
        "lastUpdatedAt": "2021-12-15T17:02:53.487Z",
        "lastUpdatedUserId": "2e96f3bb-c742-4164-af2c-151ab2fd346b",
        "fields": {
          "My date field": "2025-01-20"
        },
        "contentMeta": { "itemIds": [], "fileIds": [] }
      },
      {
        "object": "collection",
        "id": "e9e648b3-8ce3-410d-8ef8-51b46c63cdaf",
        "workspaceId": "127a8c4a-b3c6-4a42-8fef-b6c521e6c8cf",
        "url": "https://app.nuclino.com/t/b/e9e648b3-8ce3-410d-8ef8-51b46c63cdaf",
        "title": "My collection",
        "createdAt": "2021-12-15T17:02:56.276Z",
        "createdUserId": "2e96f3bb-c742-4164-af2c-151ab2fd346b",
        "lastUpdatedAt": "2021-12-15T17:03:00.389Z",
        "lastUpdatedUserId": "2e96f3bb-c742-4164-af2c-151ab2fd346b",
        "childIds": []
      }
    ]
  }
}`

const itemJSON = `{
  "status": "success",
  "data": {
    "object": "item",
    "id": "aaf6d580-565d-497b-9ff3-b32075de3f4c",
    "workspaceId": "127a8c4a-b3c6-4a42-8fef-b6c521e6c8cf",
    "url": "https://app.nuclino.com/t/b/aaf6d580-565d-497b-9ff3-b32075de3f4c",
    "title": "My Item",
    "createdAt": "2021-12-15T15:55:19.527Z",
    "createdUserId": "2e96f3bb-c742-4164-af2c-151ab2fd346b",
    "lastUpdatedAt": "2021-12-15T17:02:53.487Z",
    "lastUpdatedUserId": "2e96f3bb-c742-4164-af2c-151ab2fd346b",
    "fields": {},
    "content": "This is my **item** content",
    "contentMeta": {
      "itemIds": ["e9e648b3-8ce3-410d-8ef8-51b46c63cdaf"],
      "fileIds": ["eec0a152-b1e9-43fd-bef8-987f95c85c6e"]
    }
  }
}`

const deleteJSON = `{
  "status": "success",
  "data": {
    "id": "aaf6d580-565d-497b-9ff3-b32075de3f4c"
  }
}`

var (
	userID       = uuid.MustParse("9bff403a-6e0a-4f17-beac-c4333bd719b4")
	creatorID    = uuid.MustParse("2e96f3bb-c742-4164-af2c-151ab2fd346b")
	teamID       = uuid.MustParse("020f9737-7b21-442b-85eb-bd420e5593b2")
	workspaceID  = uuid.MustParse("127a8c4a-b3c6-4a42-8fef-b6c521e6c8cf")
	itemID       = uuid.MustParse("aaf6d580-565d-497b-9ff3-b32075de3f4c")
	collectionID = uuid.MustParse("e9e648b3-8ce3-410d-8ef8-51b46c63cdaf")
	fileID       = uuid.MustParse("eec0a152-b1e9-43fd-bef8-987f95c85c6e")
)

func strPtr(s string) *string { return &s }

func mustDecode[T any](t *testing.T, body string) T {
	t.Helper()
	v, err := decodeEnvelope[T](200, []byte(body))
	if err != nil {
		t.Fatalf("decodeEnvelope() error = %v", err)
	}
	return v
}
