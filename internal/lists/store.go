package lists

// noList is never a valid list id; ids start at 0.
const noList = -1

// FindList returns the list with the given id.
// The returned pointer aliases the collection and is invalidated by
// CreateList and DeleteList.
func (c *Collection) FindList(id int) (*List, error) {
	for i := range c.Lists {
		if c.Lists[i].ID == id {
			return &c.Lists[i], nil
		}
	}
	return nil, ErrListNotFound
}

// CreateList validates name and appends a new, empty list.
func (c *Collection) CreateList(name string) (List, error) {
	if err := c.ValidateListName(name, noList); err != nil {
		return List{}, err
	}
	l := List{ID: c.NextListID, Name: name, Todos: []Todo{}}
	c.NextListID++
	c.Lists = append(c.Lists, l)
	return l, nil
}

// RenameList validates name and assigns it to the list with the given id.
func (c *Collection) RenameList(id int, name string) error {
	l, err := c.FindList(id)
	if err != nil {
		return err
	}
	if err := c.ValidateListName(name, id); err != nil {
		return err
	}
	l.Name = name
	return nil
}

// DeleteList removes the list with the given id.
func (c *Collection) DeleteList(id int) error {
	for i := range c.Lists {
		if c.Lists[i].ID == id {
			c.Lists = append(c.Lists[:i], c.Lists[i+1:]...)
			return nil
		}
	}
	return ErrListNotFound
}

// AddTodo validates text and appends an incomplete todo to the list.
func (c *Collection) AddTodo(listID int, text string) (Todo, error) {
	l, err := c.FindList(listID)
	if err != nil {
		return Todo{}, err
	}
	if err := ValidateTodoName(text); err != nil {
		return Todo{}, err
	}
	t := Todo{ID: l.NextTodoID, Name: text}
	l.NextTodoID++
	l.Todos = append(l.Todos, t)
	return t, nil
}

// SetTodoCompleted sets the completion flag of one todo.
func (c *Collection) SetTodoCompleted(listID, todoID int, completed bool) error {
	l, err := c.FindList(listID)
	if err != nil {
		return err
	}
	t, err := l.findTodo(todoID)
	if err != nil {
		return err
	}
	t.Completed = completed
	return nil
}

// SetAllCompleted marks every todo in the list completed.
func (c *Collection) SetAllCompleted(listID int) error {
	l, err := c.FindList(listID)
	if err != nil {
		return err
	}
	for i := range l.Todos {
		l.Todos[i].Completed = true
	}
	return nil
}

// DeleteTodo removes one todo from the list.
func (c *Collection) DeleteTodo(listID, todoID int) error {
	l, err := c.FindList(listID)
	if err != nil {
		return err
	}
	for i := range l.Todos {
		if l.Todos[i].ID == todoID {
			l.Todos = append(l.Todos[:i], l.Todos[i+1:]...)
			return nil
		}
	}
	return ErrTodoNotFound
}

func (l *List) findTodo(id int) (*Todo, error) {
	for i := range l.Todos {
		if l.Todos[i].ID == id {
			return &l.Todos[i], nil
		}
	}
	return nil, ErrTodoNotFound
}
