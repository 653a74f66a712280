package scaffold

// HTML renders the browser-facing artifacts: store and update requests, a
// resource controller and the index, create, edit and show views.
func HTML(in Input) ([]Artifact, error) {
	v := newPageView(in)

	create, err := formFields(in, v, "create")
	if err != nil {
		return nil, err
	}
	edit, err := formFields(in, v, "edit")
	if err != nil {
		return nil, err
	}

	store := v
	store.Namespace = `App\Http\Requests`
	store.Class = "Store" + in.Name + "Request"

	update := store
	update.Class = "Update" + in.Name + "Request"

	createView := v
	createView.FormFields = create
	editView := v
	editView.FormFields = edit

	views := "views/" + v.Plural
	specs := []struct {
		root Root
		tmpl string
		data pageView
		path []string
	}{
		{RootApp, "request.php.tmpl", store, []string{"Http/Requests", store.Class + ".php"}},
		{RootApp, "request.php.tmpl", update, []string{"Http/Requests", update.Class + ".php"}},
		{RootApp, "controller.php.tmpl", v, []string{"Http/Controllers", in.Name + "Controller.php"}},
		{RootResources, "index.blade.php.tmpl", v, []string{views, "index.blade.php"}},
		{RootResources, "create.blade.php.tmpl", createView, []string{views, "create.blade.php"}},
		{RootResources, "edit.blade.php.tmpl", editView, []string{views, "edit.blade.php"}},
		{RootResources, "show.blade.php.tmpl", v, []string{views, "show.blade.php"}},
	}

	artifacts := make([]Artifact, 0, len(specs))
	for _, s := range specs {
		a, err := emit(s.root, s.tmpl, s.data, s.path...)
		if err != nil {
			return nil, err
		}
		artifacts = append(artifacts, a)
	}
	return artifacts, nil
}
