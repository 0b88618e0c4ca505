// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"slices"

	"github.com/MKhiriev/go-ics-oracle/models"
)

// Mailbox is the in-memory entity store of one oracle run, partitioned by
// server id. It is not safe for concurrent use; the engine serialises access.
type Mailbox struct {
	connections map[int]*Connection
}

func NewMailbox() *Mailbox {
	return &Mailbox{connections: make(map[int]*Connection)}
}

// Connect creates an empty connection, replacing any previous one with the
// same server id.
func (m *Mailbox) Connect(serverID int, connType models.ConnectionType) *Connection {
	c := newConnection(serverID, connType)
	m.connections[serverID] = c
	return c
}

func (m *Mailbox) Disconnect(serverID int) {
	delete(m.connections, serverID)
}

// Connection returns the connection keyed by serverID.
func (m *Mailbox) Connection(serverID int) (*Connection, error) {
	c, ok := m.connections[serverID]
	if !ok {
		return nil, fmt.Errorf("%w: server id %d", ErrConnectionNotFound, serverID)
	}
	return c, nil
}

// Connection owns every object of one simulated session.
type Connection struct {
	ServerID       int
	ConnectionType models.ConnectionType
	LogonHandle    int
	LogonFlag      models.LogonFlag
	InboxID        int

	// LocalIDCount counts ids reserved through GetLocalReplicaIds.
	LocalIDCount int

	folders       map[int]*Folder
	folderHandles map[int]*Folder

	messages       map[int]*Message
	messageHandles map[int]*Message

	attachments map[int]*Attachment
	downloads   map[int]*DownloadContext
	uploads     map[int]*UploadContext
	buffers     map[int]*models.FastTransferStream

	deliveries int
}

func newConnection(serverID int, connType models.ConnectionType) *Connection {
	c := &Connection{ServerID: serverID, ConnectionType: connType}
	c.clear()
	return c
}

func (c *Connection) clear() {
	c.folders = make(map[int]*Folder)
	c.folderHandles = make(map[int]*Folder)
	c.messages = make(map[int]*Message)
	c.messageHandles = make(map[int]*Message)
	c.attachments = make(map[int]*Attachment)
	c.downloads = make(map[int]*DownloadContext)
	c.uploads = make(map[int]*UploadContext)
	c.buffers = make(map[int]*models.FastTransferStream)
	c.LocalIDCount = 0
	c.InboxID = 0
	c.deliveries = 0
}

// Logon discards all objects and records the logon handle.
func (c *Connection) Logon(handle int, flag models.LogonFlag) {
	c.clear()
	c.LogonHandle = handle
	c.LogonFlag = flag
}

// LoggedOn reports whether handle is the current logon handle.
func (c *Connection) LoggedOn(handle int) bool {
	return c.LogonHandle != 0 && c.LogonHandle == handle
}

// NextDeliveryOrder returns the next delivery ordinal of the session.
func (c *Connection) NextDeliveryOrder() int {
	c.deliveries++
	return c.deliveries
}

// folders

// NewFolder registers a folder with the given id and handle. A nil parent
// makes it a root folder; otherwise the folder is linked to the parent.
func (c *Connection) NewFolder(id, handle int, parent *Folder) *Folder {
	f := newFolder(id, handle)
	if parent != nil {
		f.ParentID = parent.ID
		f.ParentHandle = parent.Handle
		f.Permission = parent.Permission
		parent.SubFolderIDs.Add(id)
	}
	c.folders[id] = f
	c.folderHandles[handle] = f
	return f
}

// BindFolderHandle makes handle resolve to f and records it as current.
func (c *Connection) BindFolderHandle(f *Folder, handle int) {
	f.Handle = handle
	c.folderHandles[handle] = f
}

func (c *Connection) FolderByID(id int) (*Folder, error) {
	f, ok := c.folders[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", ErrFolderNotFound, id)
	}
	return f, nil
}

func (c *Connection) FolderByHandle(handle int) (*Folder, error) {
	f, ok := c.folderHandles[handle]
	if !ok {
		return nil, fmt.Errorf("%w: handle %d", ErrFolderNotFound, handle)
	}
	return f, nil
}

// IsAncestor reports whether a is f itself or lies on f's parent chain.
func (c *Connection) IsAncestor(a, f *Folder) bool {
	seen := make(map[int]struct{})
	for cur := f; cur != nil; {
		if cur == a {
			return true
		}
		if _, ok := seen[cur.ID]; ok {
			return false
		}
		seen[cur.ID] = struct{}{}
		next, ok := c.folders[cur.ParentID]
		if !ok || next == cur {
			return false
		}
		cur = next
	}
	return false
}

// Reparent moves f under parent. Moving a folder under itself or one of its
// descendants fails with ErrFolderCycle and leaves the tree unchanged.
func (c *Connection) Reparent(f, parent *Folder) error {
	if c.IsAncestor(f, parent) {
		return fmt.Errorf("%w: folder %d under %d", ErrFolderCycle, f.ID, parent.ID)
	}
	if old, ok := c.folders[f.ParentID]; ok {
		old.SubFolderIDs.Remove(f.ID)
	}
	f.ParentID = parent.ID
	f.ParentHandle = parent.Handle
	parent.SubFolderIDs.Add(f.ID)
	return nil
}

// Folders returns the number of folder records.
func (c *Connection) Folders() int {
	return len(c.folders)
}

// RemoveFolder deletes the folder with its subtree and messages and unlinks
// it from its parent. It returns the removed folder ids in ascending order.
func (c *Connection) RemoveFolder(id int) []int {
	f, ok := c.folders[id]
	if !ok {
		return nil
	}
	if parent, ok := c.folders[f.ParentID]; ok {
		parent.SubFolderIDs.Remove(id)
	}

	removed := make([]int, 0, 1)
	var drop func(f *Folder)
	drop = func(f *Folder) {
		for _, child := range f.SubFolderIDs.Values() {
			if cf, ok := c.folders[child]; ok && cf.ParentID == f.ID {
				drop(cf)
			}
		}
		for _, mid := range f.MessageIDs.Values() {
			c.RemoveMessage(mid)
		}
		// unsaved messages are reachable only through their handles
		for h, hm := range c.messageHandles {
			if hm.FolderID == f.ID {
				c.dropAttachments(hm)
				delete(c.messageHandles, h)
			}
		}
		for h, hf := range c.folderHandles {
			if hf == f {
				delete(c.folderHandles, h)
			}
		}
		delete(c.folders, f.ID)
		removed = append(removed, f.ID)
	}
	drop(f)

	slices.Sort(removed)
	return removed
}

// messages

// NewMessage registers an unsaved message under handle in folder f.
func (c *Connection) NewMessage(handle int, f *Folder, associated bool) *Message {
	m := &Message{
		Handle:       handle,
		FolderID:     f.ID,
		FolderHandle: f.Handle,
		Associated:   associated,
		Properties:   NewPropertySet(),
	}
	c.messageHandles[handle] = m
	return m
}

// AssignMessageID gives m its id and links it into its folder.
func (c *Connection) AssignMessageID(m *Message, id int) {
	m.ID = id
	c.messages[id] = m
	if f, ok := c.folders[m.FolderID]; ok {
		f.MessageIDs.Add(id)
	}
}

// BindMessageHandle makes handle resolve to m and records it as current.
func (c *Connection) BindMessageHandle(m *Message, handle int) {
	m.Handle = handle
	c.messageHandles[handle] = m
}

func (c *Connection) MessageByID(id int) (*Message, error) {
	m, ok := c.messages[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", ErrMessageNotFound, id)
	}
	return m, nil
}

func (c *Connection) MessageByHandle(handle int) (*Message, error) {
	m, ok := c.messageHandles[handle]
	if !ok {
		return nil, fmt.Errorf("%w: handle %d", ErrMessageNotFound, handle)
	}
	return m, nil
}

// MessagesIn returns the saved messages of folder f ordered by id.
func (c *Connection) MessagesIn(f *Folder) []*Message {
	out := make([]*Message, 0, f.MessageIDs.Len())
	for _, id := range f.MessageIDs.Values() {
		if m, ok := c.messages[id]; ok {
			out = append(out, m)
		}
	}
	return out
}

// RemoveMessage deletes a saved message and unlinks it from its folder.
func (c *Connection) RemoveMessage(id int) bool {
	m, ok := c.messages[id]
	if !ok {
		return false
	}
	if f, ok := c.folders[m.FolderID]; ok {
		f.MessageIDs.Remove(id)
	}
	c.dropAttachments(m)
	for h, hm := range c.messageHandles {
		if hm == m {
			delete(c.messageHandles, h)
		}
	}
	delete(c.messages, id)
	return true
}

func (c *Connection) dropAttachments(m *Message) {
	for h, a := range c.attachments {
		if c.messageHandles[a.MessageHandle] == m {
			delete(c.attachments, h)
		}
	}
}

// Relink moves m into folder dst under a new id.
func (c *Connection) Relink(m *Message, dst *Folder, newID int) {
	if src, ok := c.folders[m.FolderID]; ok {
		src.MessageIDs.Remove(m.ID)
	}
	delete(c.messages, m.ID)
	m.FolderID = dst.ID
	m.FolderHandle = dst.Handle
	c.AssignMessageID(m, newID)
}

// attachments

func (c *Connection) NewAttachment(handle int, m *Message) *Attachment {
	a := &Attachment{Handle: handle, MessageHandle: m.Handle, Properties: NewPropertySet()}
	c.attachments[handle] = a
	m.AttachmentCount++
	return a
}

func (c *Connection) AttachmentByHandle(handle int) (*Attachment, error) {
	a, ok := c.attachments[handle]
	if !ok {
		return nil, fmt.Errorf("%w: handle %d", ErrAttachmentNotFound, handle)
	}
	return a, nil
}

// ObjectType tells which kind of object handle refers to.
func (c *Connection) ObjectType(handle int) models.ObjectType {
	if _, ok := c.folderHandles[handle]; ok {
		return models.ObjectFolder
	}
	if _, ok := c.messageHandles[handle]; ok {
		return models.ObjectMessage
	}
	if _, ok := c.attachments[handle]; ok {
		return models.ObjectAttachment
	}
	return models.ObjectNone
}

// contexts

func (c *Connection) AddDownload(d *DownloadContext) {
	c.downloads[d.Handle] = d
}

// Download returns the live download context bound to handle.
func (c *Connection) Download(handle int) (*DownloadContext, error) {
	d, ok := c.downloads[handle]
	if !ok || d.Retired {
		return nil, fmt.Errorf("%w: download handle %d", ErrContextNotFound, handle)
	}
	return d, nil
}

func (c *Connection) AddUpload(u *UploadContext) {
	c.uploads[u.Handle] = u
}

// Upload returns the live upload context bound to handle.
func (c *Connection) Upload(handle int) (*UploadContext, error) {
	u, ok := c.uploads[handle]
	if !ok || u.Retired {
		return nil, fmt.Errorf("%w: upload handle %d", ErrContextNotFound, handle)
	}
	return u, nil
}

// Retire marks the context bound to handle as finished. It reports whether
// a live context was found.
func (c *Connection) Retire(handle int) bool {
	if d, ok := c.downloads[handle]; ok && !d.Retired {
		d.Retired = true
		return true
	}
	if u, ok := c.uploads[handle]; ok && !u.Retired {
		u.Retired = true
		return true
	}
	return false
}

// buffers

func (c *Connection) AddBuffer(s *models.FastTransferStream) {
	c.buffers[s.BufferIndex] = s
}

func (c *Connection) Buffer(index int) (*models.FastTransferStream, error) {
	s, ok := c.buffers[index]
	if !ok {
		return nil, fmt.Errorf("%w: index %d", ErrBufferNotFound, index)
	}
	return s, nil
}
