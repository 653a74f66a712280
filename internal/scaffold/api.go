package scaffold

// API renders the JSON API artifacts under model-specific Api directories:
// a JSON resource, store and update requests and an API controller.
func API(in Input) ([]Artifact, error) {
	v := newPageView(in)

	store := v
	store.Namespace = `App\Http\Requests\Api\` + in.Name
	store.Class = "Store" + in.Name + "Request"

	update := store
	update.Class = "Update" + in.Name + "Request"

	specs := []struct {
		tmpl string
		data pageView
		path []string
	}{
		{"api_resource.php.tmpl", v, []string{"Http/Resources/Api", in.Name, in.Name + "Resource.php"}},
		{"request.php.tmpl", store, []string{"Http/Requests/Api", in.Name, store.Class + ".php"}},
		{"request.php.tmpl", update, []string{"Http/Requests/Api", in.Name, update.Class + ".php"}},
		{"api_controller.php.tmpl", v, []string{"Http/Controllers/Api", in.Name, in.Name + "Controller.php"}},
	}

	artifacts := make([]Artifact, 0, len(specs))
	for _, s := range specs {
		a, err := emit(RootApp, s.tmpl, s.data, s.path...)
		if err != nil {
			return nil, err
		}
		artifacts = append(artifacts, a)
	}
	return artifacts, nil
}
