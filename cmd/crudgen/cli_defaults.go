package main

// Default file names.
const (
	// DefaultConfigFile is the default configuration filename.
	DefaultConfigFile = "crudgen.yaml"

	// DefaultModelsDir holds model definitions unless configured otherwise.
	DefaultModelsDir = "./models"
)

const (
	MainTitle   = "crudgen"
	MainSummary = "★  One model: a full CRUD"
)

// Messages for consistent CLI output.
const (
	MsgCRUDGenerated    = "CRUD for %s successfully generated!"
	MsgAPIGenerated     = "API CRUD for %s successfully generated!"
	MsgModelNotFound    = "Model %s does not exist!"
	MsgNoFillableFields = "No fillable fields found in %s model!"
	MsgDryRun           = "dry run: nothing was written"
	MsgNoModels         = "No model definitions found in %s"
)

// Panel titles.
const (
	TitleProjectInitialized = "Project Initialized"
	TitleWatching           = "Watching for Changes"
)

// configTemplate is written by init.
const configTemplate = `# crudgen.yaml
# database_url is optional; without it column types come from the
# "columns" section of each model definition.
# database_url: ${DATABASE_URL}
# dialect: postgres # postgres, mysql or sqlite

models_dir: ./models
app_dir: ./app
resources_dir: ./resources
routes_dir: ./routes
`

// exampleModel is the model definition written by init.
const exampleModel = `# table defaults to the snake_case plural of the model name.
table: products

fillable:
  - name
  - price
  - status
  - category_id

enums:
  status:
    values: [draft, published, archived]
    default: draft

# Used when no database is configured.
columns:
  name: string
  price: decimal
`
